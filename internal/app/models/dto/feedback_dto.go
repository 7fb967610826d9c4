package dto

import "github.com/mrucampus/helpdesk/internal/app/models"

// SubmitFeedbackRequest holds a rating for a resolved complaint
type SubmitFeedbackRequest struct {
	ComplaintID int64   `json:"complaint_id" binding:"required" example:"42"`
	Rating      int     `json:"rating" binding:"required" example:"5"`
	Comment     *string `json:"comment,omitempty" example:"Fixed quickly, thanks"`
}

// FeedbackOverview is the admin-facing feedback listing plus the
// department ratings summary
type FeedbackOverview struct {
	Feedback    []models.Feedback         `json:"feedback"`
	DeptRatings []models.DepartmentRating `json:"deptRatings"`
}
