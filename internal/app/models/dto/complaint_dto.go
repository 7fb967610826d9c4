package dto

import "github.com/mrucampus/helpdesk/internal/app/models"

// CreateComplaintRequest holds the multipart form fields for complaint
// submission. The optional attachment file is handled separately.
type CreateComplaintRequest struct {
	Category    string  `form:"category" binding:"required" example:"library"`
	Subject     string  `form:"subject" binding:"required" example:"Broken chair in reading hall"`
	Description string  `form:"description" binding:"required"`
	Location    *string `form:"location" example:"Main Campus"`
	Block       *string `form:"block" example:"B"`
	RoomNo      *string `form:"room_no" example:"204"`
	Priority    string  `form:"priority" example:"medium"` // defaults to medium when empty
}

// CreateComplaintResponse returns the generated ticket identifier
type CreateComplaintResponse struct {
	TicketID string `json:"ticketId" example:"MRU-7K2XQ9AB"`
}

// ComplaintFilter narrows the role-scoped complaint listing
type ComplaintFilter struct {
	Status       string `form:"status" example:"pending"`
	Category     string `form:"category" example:"library"`
	DepartmentID int64  `form:"department_id" example:"3"`
	Search       string `form:"search" example:"MRU-"`
}

// UpdateComplaintRequest is a partial update; only the provided fields are
// applied. An audit row is written for every call, even an empty one. The
// optional attachment file is handled separately, like on creation.
type UpdateComplaintRequest struct {
	Status       *string `form:"status" json:"status" example:"resolved"`
	Priority     *string `form:"priority" json:"priority" example:"high"`
	DepartmentID *int64  `form:"department_id" json:"department_id" example:"3"`
	Message      *string `form:"message" json:"message" example:"Replaced the chair"`
}

// ComplaintDetail is a complaint together with its ordered audit history
type ComplaintDetail struct {
	models.Complaint
	Updates []models.ComplaintUpdate `json:"updates"`
}

// ComplaintStats is the role-scoped status breakdown
type ComplaintStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
	Assigned   int64 `json:"assigned"`
}
