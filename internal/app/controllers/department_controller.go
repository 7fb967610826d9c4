package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mrucampus/helpdesk/internal/app/models/dto"
	"github.com/mrucampus/helpdesk/internal/app/services"
	"github.com/mrucampus/helpdesk/internal/middleware"
)

// DepartmentController handles department endpoints
type DepartmentController struct {
	departmentService *services.DepartmentService
}

// NewDepartmentController creates a new department controller
func NewDepartmentController(departmentService *services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// Create godoc
// @Summary Create a department
// @Description Registers a department and the complaint category it handles. Admin only.
// @Tags departments
// @Accept json
// @Produce json
// @Param request body dto.CreateDepartmentRequest true "Department payload"
// @Success 201 {object} dto.APIResponse{data=models.Department}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /departments [post]
func (dc *DepartmentController) Create(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	department, err := dc.departmentService.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(department, "Department created"))
}

// List godoc
// @Summary List departments with complaint counters
// @Tags departments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Department}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /departments [get]
func (dc *DepartmentController) List(c *gin.Context) {
	departments, err := dc.departmentService.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(departments, ""))
}

// GetByID godoc
// @Summary Get a department
// @Tags departments
// @Produce json
// @Param id path int true "Department id"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /departments/{id} [get]
func (dc *DepartmentController) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	department, err := dc.departmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(department, ""))
}

// Update godoc
// @Summary Update a department
// @Description Edits contact and descriptive fields. The category key cannot be changed. Admin only.
// @Tags departments
// @Accept json
// @Produce json
// @Param id path int true "Department id"
// @Param request body dto.UpdateDepartmentRequest true "Department payload"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /departments/{id} [put]
func (dc *DepartmentController) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	department, err := dc.departmentService.Update(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(department, "Department updated"))
}

// Delete godoc
// @Summary Delete a department
// @Description Removes a department. Its complaints become unassigned. Admin only.
// @Tags departments
// @Produce json
// @Param id path int true "Department id"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /departments/{id} [delete]
func (dc *DepartmentController) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := dc.departmentService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Department deleted"))
}
