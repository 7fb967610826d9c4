package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mrucampus/helpdesk/internal/app/models/dto"
	"github.com/mrucampus/helpdesk/internal/app/services"
	"github.com/mrucampus/helpdesk/internal/middleware"
	"github.com/mrucampus/helpdesk/internal/pkg/apperrors"
)

// UserController handles the admin user-administration endpoints
type UserController struct {
	userService      *services.UserService
	complaintService *services.ComplaintService
}

// NewUserController creates a new user controller
func NewUserController(userService *services.UserService, complaintService *services.ComplaintService) *UserController {
	return &UserController{
		userService:      userService,
		complaintService: complaintService,
	}
}

// List godoc
// @Summary List all users
// @Description Admin only. Optionally filters by a name or email substring.
// @Tags users
// @Produce json
// @Param search query string false "Substring match on name or email"
// @Success 200 {object} dto.APIResponse{data=[]dto.UserProfile}
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.userService.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(users, ""))
}

// Update godoc
// @Summary Change a user's role and department
// @Description Admin only. Assigning staff to a department scopes their complaint visibility.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param request body dto.UpdateUserRequest true "Role and department"
// @Success 200 {object} dto.APIResponse{data=dto.UserProfile}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [put]
func (uc *UserController) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	profile, err := uc.userService.Update(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(profile, "User updated"))
}

// Delete godoc
// @Summary Delete a user account
// @Description Admin only. The account's complaints are removed with it.
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (uc *UserController) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	callerID, ok := middleware.GetUserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	if err := uc.userService.Delete(c.Request.Context(), id, callerID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(nil, "User deleted"))
}

// Analytics godoc
// @Summary Complaint analytics for the admin dashboard
// @Description Breakdown by category, status and department plus the trailing 30-day submission series
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ComplaintAnalytics}
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/analytics/complaints [get]
func (uc *UserController) Analytics(c *gin.Context) {
	analytics, err := uc.complaintService.Analytics(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(analytics, ""))
}
