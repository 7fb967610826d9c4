package services

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mrucampus/helpdesk/internal/app/models"
	"github.com/mrucampus/helpdesk/internal/app/models/dto"
	"github.com/mrucampus/helpdesk/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDepartmentCreate_DuplicateCategoryKey(t *testing.T) {
	departmentRepo := new(MockDepartmentRepository)
	service := NewDepartmentService(departmentRepo)

	duplicate := &pgconn.PgError{Code: "23505", ConstraintName: "departments_category_key_key"}
	departmentRepo.On("Create", mock.Anything, mock.Anything).Return(duplicate)

	_, err := service.Create(context.Background(), dto.CreateDepartmentRequest{
		Name:        "Second Library",
		CategoryKey: "library",
		Email:       "library2@mru.edu",
	})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestDepartmentUpdate_KeepsCategoryKey(t *testing.T) {
	departmentRepo := new(MockDepartmentRepository)
	service := NewDepartmentService(departmentRepo)

	existing := &models.Department{
		ID:          3,
		Name:        "Library Services",
		CategoryKey: "library",
		Email:       "library@mru.edu",
		IsActive:    true,
	}
	departmentRepo.On("GetByID", mock.Anything, int64(3)).Return(existing, nil)
	departmentRepo.On("Update", mock.Anything, mock.MatchedBy(func(d *models.Department) bool {
		return d.CategoryKey == "library" && d.Name == "Library & Archives"
	})).Return(nil)

	department, err := service.Update(context.Background(), 3, dto.UpdateDepartmentRequest{
		Name:     "Library & Archives",
		Email:    "library@mru.edu",
		IsActive: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "library", department.CategoryKey)
	departmentRepo.AssertExpectations(t)
}

func TestDepartmentList_NilBecomesEmptySlice(t *testing.T) {
	departmentRepo := new(MockDepartmentRepository)
	service := NewDepartmentService(departmentRepo)

	departmentRepo.On("ListWithCounts", mock.Anything).Return([]models.Department(nil), nil)

	departments, err := service.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, departments)
	assert.Empty(t, departments)
}
