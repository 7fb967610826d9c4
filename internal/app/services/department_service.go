package services

import (
	"context"

	"github.com/mrucampus/helpdesk/internal/app/models"
	"github.com/mrucampus/helpdesk/internal/app/models/dto"
	"github.com/mrucampus/helpdesk/internal/pkg/apperrors"
	"github.com/mrucampus/helpdesk/internal/pkg/dberrors"
)

// DepartmentService handles department administration
type DepartmentService struct {
	departmentRepo DepartmentRepository
}

// NewDepartmentService creates a new department service
func NewDepartmentService(departmentRepo DepartmentRepository) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
	}
}

// Create registers a new department. Each category key may be claimed by at
// most one department.
func (s *DepartmentService) Create(ctx context.Context, req dto.CreateDepartmentRequest) (*models.Department, error) {
	department := &models.Department{
		Name:        req.Name,
		CategoryKey: req.CategoryKey,
		Description: req.Description,
		Email:       req.Email,
		HeadName:    req.HeadName,
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("a department already handles this category")
		}
		return nil, err
	}

	return department, nil
}

// List returns all departments with their complaint counters
func (s *DepartmentService) List(ctx context.Context) ([]models.Department, error) {
	departments, err := s.departmentRepo.ListWithCounts(ctx)
	if err != nil {
		return nil, err
	}
	if departments == nil {
		departments = []models.Department{}
	}
	return departments, nil
}

// GetByID returns a single department
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// Update edits a department's contact and descriptive fields. The category
// key stays fixed so complaint routing history remains meaningful.
func (s *DepartmentService) Update(ctx context.Context, id int64, req dto.UpdateDepartmentRequest) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	department.Name = req.Name
	department.Description = req.Description
	department.Email = req.Email
	department.HeadName = req.HeadName
	department.IsActive = req.IsActive

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

// Delete removes a department. Complaints routed to it fall back to
// unassigned via the foreign key.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	return s.departmentRepo.Delete(ctx, id)
}
