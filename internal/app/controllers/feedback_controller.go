package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mrucampus/helpdesk/internal/app/models/dto"
	"github.com/mrucampus/helpdesk/internal/app/services"
	"github.com/mrucampus/helpdesk/internal/middleware"
	"github.com/mrucampus/helpdesk/internal/pkg/apperrors"
)

// FeedbackController handles resolution feedback endpoints
type FeedbackController struct {
	feedbackService *services.FeedbackService
}

// NewFeedbackController creates a new feedback controller
func NewFeedbackController(feedbackService *services.FeedbackService) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

// Submit godoc
// @Summary Rate a resolved complaint
// @Description The complaint owner may submit exactly one rating, only after resolution
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.SubmitFeedbackRequest true "Feedback payload"
// @Success 201 {object} dto.APIResponse{data=models.Feedback}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /feedback [post]
func (fc *FeedbackController) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	feedback, err := fc.feedbackService.Submit(c.Request.Context(), userID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(feedback, "Feedback submitted"))
}

// GetByComplaint godoc
// @Summary Get the feedback for a complaint
// @Description Returns null data when the complaint has no feedback yet
// @Tags feedback
// @Produce json
// @Param id path int true "Complaint id"
// @Success 200 {object} dto.APIResponse{data=models.Feedback}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /feedback/complaint/{id} [get]
func (fc *FeedbackController) GetByComplaint(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	feedback, err := fc.feedbackService.GetByComplaint(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(feedback, ""))
}

// ListByDepartment godoc
// @Summary List feedback for a department
// @Tags feedback
// @Produce json
// @Param id path int true "Department id"
// @Success 200 {object} dto.APIResponse{data=[]models.Feedback}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /feedback/department/{id} [get]
func (fc *FeedbackController) ListByDepartment(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	feedbacks, err := fc.feedbackService.ListByDepartment(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(feedbacks, ""))
}

// Overview godoc
// @Summary All feedback with department rating summary
// @Description Every feedback row plus average rating per department, best first
// @Tags feedback
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.FeedbackOverview}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /feedback/all [get]
func (fc *FeedbackController) Overview(c *gin.Context) {
	overview, err := fc.feedbackService.Overview(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(overview, ""))
}
