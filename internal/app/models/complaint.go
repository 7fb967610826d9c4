package models

import "time"

// ComplaintStatus is the lifecycle state of a complaint. The set is flat:
// any authorized update may move a complaint between any two states.
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "pending"
	StatusAssigned   ComplaintStatus = "assigned"
	StatusInProgress ComplaintStatus = "in_progress"
	StatusResolved   ComplaintStatus = "resolved"
)

// ValidStatus reports whether the given string is a known complaint status.
func ValidStatus(s string) bool {
	switch ComplaintStatus(s) {
	case StatusPending, StatusAssigned, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// ComplaintPriority indicates urgency as set by the submitter.
type ComplaintPriority string

const (
	PriorityLow    ComplaintPriority = "low"
	PriorityMedium ComplaintPriority = "medium"
	PriorityHigh   ComplaintPriority = "high"
)

// ValidPriority reports whether the given string is a known priority.
func ValidPriority(p string) bool {
	switch ComplaintPriority(p) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Complaint defines the complaint model based on the 'complaints' table
type Complaint struct {
	ID           int64             `json:"id" example:"42"`
	TicketID     string            `json:"ticket_id" example:"MRU-7K2XQ9AB"` // Human-facing ticket identifier
	UserID       int64             `json:"user_id" example:"7"`
	DepartmentID *int64            `json:"department_id,omitempty" example:"3"` // Nil when no department maps to the category
	Category     string            `json:"category" example:"library"`
	Subject      string            `json:"subject" example:"Broken chair in reading hall"`
	Description  string            `json:"description"`
	Location     *string           `json:"location,omitempty" example:"Main Campus"`
	Block        *string           `json:"block,omitempty" example:"B"`
	RoomNo       *string           `json:"room_no,omitempty" example:"204"`
	Priority     ComplaintPriority `json:"priority" example:"medium"`
	Status       ComplaintStatus   `json:"status" example:"pending"`
	Attachment   *string           `json:"attachment,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	// Joined fields, populated by list/detail queries
	UserName       string  `json:"user_name,omitempty"`
	UserEmail      string  `json:"user_email,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
}

// ComplaintUpdate is an append-only audit record for a complaint.
// Rows are never mutated or deleted once written.
type ComplaintUpdate struct {
	ID          int64     `json:"id"`
	ComplaintID int64     `json:"complaint_id"`
	UpdatedBy   int64     `json:"updated_by"`
	Message     *string   `json:"message,omitempty"`
	Status      *string   `json:"status,omitempty"` // Status snapshot at the time of the update
	Attachment  *string   `json:"attachment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	UpdaterName string `json:"updater_name,omitempty"`
}
