package models

import "time"

// Department represents a campus department that complaints are routed to
type Department struct {
	ID          int64     `json:"id" example:"1"`
	Name        string    `json:"department_name" example:"Library Services"`
	CategoryKey string    `json:"category_key" example:"library"`
	Description string    `json:"description" example:"Handles library related complaints"`
	Email       string    `json:"email" example:"library@mru.edu"`
	HeadName    string    `json:"head_name" example:"Dr. R. Sharma"`
	IsActive    bool      `json:"is_active" example:"true"`
	CreatedAt   time.Time `json:"created_at"`

	// Complaint counters joined in list queries
	TotalComplaints int64 `json:"total_complaints"`
	Pending         int64 `json:"pending"`
	Resolved        int64 `json:"resolved"`
}
