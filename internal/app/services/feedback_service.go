package services

import (
	"context"

	"github.com/mrucampus/helpdesk/internal/app/models"
	"github.com/mrucampus/helpdesk/internal/app/models/dto"
	"github.com/mrucampus/helpdesk/internal/pkg/apperrors"
)

// FeedbackRepository is the persistence surface the feedback service needs
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	ExistsForComplaint(ctx context.Context, complaintID int64) (bool, error)
	GetByComplaintID(ctx context.Context, complaintID int64) (*models.Feedback, error)
	ListByDepartment(ctx context.Context, departmentID int64) ([]models.Feedback, error)
	ListAll(ctx context.Context) ([]models.Feedback, error)
	DepartmentRatings(ctx context.Context) ([]models.DepartmentRating, error)
}

// FeedbackService handles resolution feedback
type FeedbackService struct {
	feedbackRepo  FeedbackRepository
	complaintRepo ComplaintRepository
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(feedbackRepo FeedbackRepository, complaintRepo ComplaintRepository) *FeedbackService {
	return &FeedbackService{
		feedbackRepo:  feedbackRepo,
		complaintRepo: complaintRepo,
	}
}

// Submit records feedback for a resolved complaint. Only the complaint
// owner may rate it, exactly once, and only after resolution. The
// department id is frozen from the complaint at submission time.
func (s *FeedbackService) Submit(ctx context.Context, userID int64, req dto.SubmitFeedbackRequest) (*models.Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrInvalidRating
	}

	complaint, err := s.complaintRepo.GetByID(ctx, req.ComplaintID)
	if err != nil {
		return nil, err
	}

	// Someone else's complaint looks the same as a missing one; the
	// response must not reveal that the id exists
	if complaint.UserID != userID {
		return nil, apperrors.ErrComplaintNotFound
	}

	if complaint.Status != models.StatusResolved {
		return nil, apperrors.ErrComplaintNotResolved
	}

	exists, err := s.feedbackRepo.ExistsForComplaint(ctx, req.ComplaintID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrFeedbackExists
	}

	feedback := &models.Feedback{
		ComplaintID:  req.ComplaintID,
		UserID:       userID,
		DepartmentID: complaint.DepartmentID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

// GetByComplaint returns the feedback for a complaint, or nil when none
// was submitted
func (s *FeedbackService) GetByComplaint(ctx context.Context, complaintID int64) (*models.Feedback, error) {
	if _, err := s.complaintRepo.GetByID(ctx, complaintID); err != nil {
		return nil, err
	}
	return s.feedbackRepo.GetByComplaintID(ctx, complaintID)
}

// ListByDepartment returns all feedback for one department
func (s *FeedbackService) ListByDepartment(ctx context.Context, departmentID int64) ([]models.Feedback, error) {
	feedbacks, err := s.feedbackRepo.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if feedbacks == nil {
		feedbacks = []models.Feedback{}
	}
	return feedbacks, nil
}

// Overview returns every feedback row plus the per-department rating
// summary. Departments without feedback are absent from the summary.
func (s *FeedbackService) Overview(ctx context.Context) (*dto.FeedbackOverview, error) {
	feedbacks, err := s.feedbackRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if feedbacks == nil {
		feedbacks = []models.Feedback{}
	}

	ratings, err := s.feedbackRepo.DepartmentRatings(ctx)
	if err != nil {
		return nil, err
	}
	if ratings == nil {
		ratings = []models.DepartmentRating{}
	}

	return &dto.FeedbackOverview{
		Feedback:    feedbacks,
		DeptRatings: ratings,
	}, nil
}
