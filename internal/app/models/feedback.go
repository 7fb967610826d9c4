package models

import "time"

// Feedback holds a resolution rating for a complaint. At most one row per
// complaint; department_id is copied from the complaint at submission time so
// later reassignment does not change historical attribution.
type Feedback struct {
	ID           int64     `json:"id"`
	ComplaintID  int64     `json:"complaint_id"`
	UserID       int64     `json:"user_id"`
	DepartmentID *int64    `json:"department_id,omitempty"`
	Rating       int       `json:"rating" example:"5"` // 1..5
	Comment      *string   `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`

	// Joined fields
	UserName       string  `json:"user_name,omitempty"`
	Subject        string  `json:"subject,omitempty"`
	TicketID       string  `json:"ticket_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
}

// DepartmentRating is one row of the best-to-worst department summary.
// Departments with no feedback are omitted from the summary entirely.
type DepartmentRating struct {
	DepartmentName string  `json:"department_name"`
	AvgRating      float64 `json:"avg_rating" example:"4.3"`
	TotalFeedback  int64   `json:"total_feedback" example:"12"`
}
