package services

import (
	"context"
	"testing"

	"github.com/mrucampus/helpdesk/internal/app/models"
	"github.com/mrucampus/helpdesk/internal/app/models/dto"
	"github.com/mrucampus/helpdesk/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func resolvedComplaint(owner int64) *models.Complaint {
	deptID := int64(3)
	return &models.Complaint{
		ID:           42,
		TicketID:     "MRU-XY12AB34",
		UserID:       owner,
		Status:       models.StatusResolved,
		DepartmentID: &deptID,
	}
}

func TestSubmit_RejectsRatingOutOfRange(t *testing.T) {
	complaintRepo := new(MockComplaintRepository)
	service := NewFeedbackService(new(MockFeedbackRepository), complaintRepo)

	for _, rating := range []int{0, 6, -1} {
		_, err := service.Submit(context.Background(), 7, dto.SubmitFeedbackRequest{
			ComplaintID: 42,
			Rating:      rating,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidRating)
	}

	// The rating check fires before any lookup
	complaintRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestSubmit_ForeignComplaintLooksMissing(t *testing.T) {
	feedbackRepo := new(MockFeedbackRepository)
	complaintRepo := new(MockComplaintRepository)
	service := NewFeedbackService(feedbackRepo, complaintRepo)

	complaintRepo.On("GetByID", mock.Anything, int64(42)).Return(resolvedComplaint(7), nil)

	_, err := service.Submit(context.Background(), 99, dto.SubmitFeedbackRequest{
		ComplaintID: 42,
		Rating:      5,
	})

	// A non-owner gets the same not-found as a nonexistent id, so the
	// response does not confirm the complaint exists
	assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
	feedbackRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_RequiresResolvedComplaint(t *testing.T) {
	feedbackRepo := new(MockFeedbackRepository)
	complaintRepo := new(MockComplaintRepository)
	service := NewFeedbackService(feedbackRepo, complaintRepo)

	pending := resolvedComplaint(7)
	pending.Status = models.StatusInProgress
	complaintRepo.On("GetByID", mock.Anything, int64(42)).Return(pending, nil)

	_, err := service.Submit(context.Background(), 7, dto.SubmitFeedbackRequest{
		ComplaintID: 42,
		Rating:      4,
	})

	assert.ErrorIs(t, err, apperrors.ErrComplaintNotResolved)
}

func TestSubmit_RejectsSecondRating(t *testing.T) {
	feedbackRepo := new(MockFeedbackRepository)
	complaintRepo := new(MockComplaintRepository)
	service := NewFeedbackService(feedbackRepo, complaintRepo)

	complaintRepo.On("GetByID", mock.Anything, int64(42)).Return(resolvedComplaint(7), nil)
	feedbackRepo.On("ExistsForComplaint", mock.Anything, int64(42)).Return(true, nil)

	_, err := service.Submit(context.Background(), 7, dto.SubmitFeedbackRequest{
		ComplaintID: 42,
		Rating:      4,
	})

	assert.ErrorIs(t, err, apperrors.ErrFeedbackExists)
}

func TestSubmit_FreezesDepartmentFromComplaint(t *testing.T) {
	feedbackRepo := new(MockFeedbackRepository)
	complaintRepo := new(MockComplaintRepository)
	service := NewFeedbackService(feedbackRepo, complaintRepo)

	complaintRepo.On("GetByID", mock.Anything, int64(42)).Return(resolvedComplaint(7), nil)
	feedbackRepo.On("ExistsForComplaint", mock.Anything, int64(42)).Return(false, nil)
	feedbackRepo.On("Create", mock.Anything, mock.MatchedBy(func(f *models.Feedback) bool {
		return f.DepartmentID != nil && *f.DepartmentID == 3 && f.UserID == 7
	})).Return(nil)

	comment := "Fixed quickly, thanks"
	feedback, err := service.Submit(context.Background(), 7, dto.SubmitFeedbackRequest{
		ComplaintID: 42,
		Rating:      5,
		Comment:     &comment,
	})

	require.NoError(t, err)
	require.NotNil(t, feedback.DepartmentID)
	assert.Equal(t, int64(3), *feedback.DepartmentID)
	feedbackRepo.AssertExpectations(t)
}

func TestGetByComplaint_NoFeedbackYieldsNil(t *testing.T) {
	feedbackRepo := new(MockFeedbackRepository)
	complaintRepo := new(MockComplaintRepository)
	service := NewFeedbackService(feedbackRepo, complaintRepo)

	complaintRepo.On("GetByID", mock.Anything, int64(42)).Return(resolvedComplaint(7), nil)
	feedbackRepo.On("GetByComplaintID", mock.Anything, int64(42)).Return(nil, nil)

	feedback, err := service.GetByComplaint(context.Background(), 42)

	require.NoError(t, err)
	assert.Nil(t, feedback)
}

func TestOverview_EmptyTablesYieldEmptySlices(t *testing.T) {
	feedbackRepo := new(MockFeedbackRepository)
	service := NewFeedbackService(feedbackRepo, new(MockComplaintRepository))

	feedbackRepo.On("ListAll", mock.Anything).Return([]models.Feedback(nil), nil)
	feedbackRepo.On("DepartmentRatings", mock.Anything).Return([]models.DepartmentRating(nil), nil)

	overview, err := service.Overview(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, overview.Feedback)
	assert.NotNil(t, overview.DeptRatings)
	assert.Empty(t, overview.Feedback)
	assert.Empty(t, overview.DeptRatings)
}
