package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mrucampus/helpdesk/internal/app/models/dto"
	"github.com/mrucampus/helpdesk/internal/app/repositories"
	"github.com/mrucampus/helpdesk/internal/app/services"
	"github.com/mrucampus/helpdesk/internal/middleware"
	"github.com/mrucampus/helpdesk/internal/pkg/apperrors"
	"github.com/mrucampus/helpdesk/internal/pkg/filestorage"
	"github.com/mrucampus/helpdesk/internal/pkg/logger"
)

// ComplaintController handles complaint endpoints
type ComplaintController struct {
	complaintService *services.ComplaintService
	storage          filestorage.Storage
}

// NewComplaintController creates a new complaint controller
func NewComplaintController(complaintService *services.ComplaintService, storage filestorage.Storage) *ComplaintController {
	return &ComplaintController{
		complaintService: complaintService,
		storage:          storage,
	}
}

// requestScope builds the visibility scope from the token claims
func requestScope(c *gin.Context) (repositories.ComplaintScope, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return repositories.ComplaintScope{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return repositories.ComplaintScope{}, false
	}
	return repositories.ComplaintScope{
		Role:         role,
		UserID:       userID,
		DepartmentID: middleware.GetDepartmentID(c),
	}, true
}

func parseIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id parameter")
	}
	return id, nil
}

// Create godoc
// @Summary Submit a new complaint
// @Description Registers a complaint, routes it to the responsible department and returns the ticket id. Accepts an optional attachment.
// @Tags complaints
// @Accept multipart/form-data
// @Produce json
// @Param category formData string true "Complaint category"
// @Param subject formData string true "Short subject line"
// @Param description formData string true "Full description"
// @Param location formData string false "Campus location"
// @Param block formData string false "Building block"
// @Param room_no formData string false "Room number"
// @Param priority formData string false "low, medium or high (default medium)"
// @Param attachment formData file false "Optional attachment"
// @Success 201 {object} dto.APIResponse{data=dto.CreateComplaintResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /complaints [post]
func (cc *ComplaintController) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.CreateComplaintRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	var attachment *string
	if fileHeader, err := c.FormFile("attachment"); err == nil && fileHeader != nil {
		storedName, err := cc.storage.SaveFile(fileHeader)
		if err != nil {
			middleware.HandleAPIError(c, err)
			return
		}
		if storedName != "" {
			attachment = &storedName
		}
	}

	complaint, err := cc.complaintService.Create(c.Request.Context(), userID, req, attachment)
	if err != nil {
		// The stored attachment is orphaned if creation fails
		if attachment != nil {
			if delErr := cc.storage.DeleteFile(*attachment); delErr != nil {
				logger.Warn().Err(delErr).Str("file", *attachment).Msg("Failed to remove orphaned attachment")
			}
		}
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(
		dto.CreateComplaintResponse{TicketID: complaint.TicketID},
		"Complaint submitted",
	))
}

// List godoc
// @Summary List visible complaints
// @Description Students and faculty see their own complaints, staff their department's, admins all. Filters and search are optional.
// @Tags complaints
// @Produce json
// @Param status query string false "Filter by status"
// @Param category query string false "Filter by category"
// @Param department_id query int false "Filter by department"
// @Param search query string false "Substring match on ticket id, subject or requester name"
// @Success 200 {object} dto.APIResponse{data=[]models.Complaint}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /complaints [get]
func (cc *ComplaintController) List(c *gin.Context) {
	scope, ok := requestScope(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	var filter dto.ComplaintFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	complaints, err := cc.complaintService.List(c.Request.Context(), scope, filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(complaints, ""))
}

// Stats godoc
// @Summary Complaint status counters
// @Description Counts by status within the caller's visibility scope
// @Tags complaints
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ComplaintStats}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /complaints/stats/summary [get]
func (cc *ComplaintController) Stats(c *gin.Context) {
	scope, ok := requestScope(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	stats, err := cc.complaintService.Stats(c.Request.Context(), scope)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(stats, ""))
}

// GetByID godoc
// @Summary Get a complaint with its update history
// @Tags complaints
// @Produce json
// @Param id path int true "Complaint id"
// @Success 200 {object} dto.APIResponse{data=dto.ComplaintDetail}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /complaints/{id} [get]
func (cc *ComplaintController) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	detail, err := cc.complaintService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(detail, ""))
}

// Update godoc
// @Summary Update complaint status, priority or routing
// @Description Applies a partial update and appends an entry to the complaint history, optionally with an attachment. Staff and admin only.
// @Tags complaints
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Complaint id"
// @Param status formData string false "New status"
// @Param priority formData string false "New priority"
// @Param department_id formData int false "Reassign to department"
// @Param message formData string false "Remark recorded on the history entry"
// @Param attachment formData file false "Optional attachment on the history entry"
// @Success 200 {object} dto.APIResponse{data=dto.ComplaintDetail}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /complaints/{id} [put]
func (cc *ComplaintController) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.UpdateComplaintRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	var attachment *string
	if fileHeader, err := c.FormFile("attachment"); err == nil && fileHeader != nil {
		storedName, err := cc.storage.SaveFile(fileHeader)
		if err != nil {
			middleware.HandleAPIError(c, err)
			return
		}
		if storedName != "" {
			attachment = &storedName
		}
	}

	detail, err := cc.complaintService.Update(c.Request.Context(), id, req, attachment, userID)
	if err != nil {
		// The stored attachment is orphaned if the update fails
		if attachment != nil {
			if delErr := cc.storage.DeleteFile(*attachment); delErr != nil {
				logger.Warn().Err(delErr).Str("file", *attachment).Msg("Failed to remove orphaned attachment")
			}
		}
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(detail, "Complaint updated"))
}
