// Package authz holds the role capability table. Handlers never test role
// names directly; they ask for a capability and the table decides.
package authz

import "github.com/mrucampus/helpdesk/internal/app/models"

// Capability names a privileged operation group.
type Capability string

const (
	// CapComplaintUpdate allows changing complaint status, priority and routing
	CapComplaintUpdate Capability = "complaint.update"
	// CapDepartmentManage allows creating, editing and deleting departments
	CapDepartmentManage Capability = "department.manage"
	// CapUserManage allows listing, editing and deleting user accounts
	CapUserManage Capability = "user.manage"
	// CapAnalyticsRead allows reading the cross-user analytics aggregates
	CapAnalyticsRead Capability = "analytics.read"
)

// grants is the single source of truth for role privileges. Students and
// faculty hold no capabilities; their access is scoped by ownership instead.
var grants = map[models.Role]map[Capability]bool{
	models.RoleStaff: {
		CapComplaintUpdate: true,
	},
	models.RoleAdmin: {
		CapComplaintUpdate:  true,
		CapDepartmentManage: true,
		CapUserManage:       true,
		CapAnalyticsRead:    true,
	},
}

// Allowed reports whether the role holds the capability.
func Allowed(role models.Role, capability Capability) bool {
	return grants[role][capability]
}
