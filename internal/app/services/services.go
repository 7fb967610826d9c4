package services

import (
	"github.com/mrucampus/helpdesk/internal/app/repositories"
	"github.com/mrucampus/helpdesk/internal/pkg/auth"
	"github.com/mrucampus/helpdesk/internal/pkg/email"
)

// Services holds all service instances
type Services struct {
	Auth       *AuthService
	Complaint  *ComplaintService
	Department *DepartmentService
	Feedback   *FeedbackService
	User       *UserService
}

// NewServices creates all services wired to the repositories
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	mailer email.Mailer,
	adminEmail string,
) *Services {
	return &Services{
		Auth:       NewAuthService(repos.User, jwtService),
		Complaint:  NewComplaintService(repos.Complaint, repos.Department, repos.User, mailer, adminEmail),
		Department: NewDepartmentService(repos.Department),
		Feedback:   NewFeedbackService(repos.Feedback, repos.Complaint),
		User:       NewUserService(repos.User, repos.Department),
	}
}
