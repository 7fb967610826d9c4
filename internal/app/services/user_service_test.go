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

func TestUserUpdate_RejectsUnknownRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewUserService(userRepo, new(MockDepartmentRepository))

	_, err := service.Update(context.Background(), 7, dto.UpdateUserRequest{Role: "superuser"})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	userRepo.AssertNotCalled(t, "UpdateRoleAndDepartment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserUpdate_VerifiesDepartmentExists(t *testing.T) {
	userRepo := new(MockUserRepository)
	departmentRepo := new(MockDepartmentRepository)
	service := NewUserService(userRepo, departmentRepo)

	deptID := int64(42)
	departmentRepo.On("GetByID", mock.Anything, deptID).Return(nil, apperrors.ErrDepartmentNotFound)

	_, err := service.Update(context.Background(), 7, dto.UpdateUserRequest{
		Role:         "staff",
		DepartmentID: &deptID,
	})

	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestUserUpdate_AssignsStaffToDepartment(t *testing.T) {
	userRepo := new(MockUserRepository)
	departmentRepo := new(MockDepartmentRepository)
	service := NewUserService(userRepo, departmentRepo)

	deptID := int64(3)
	departmentRepo.On("GetByID", mock.Anything, deptID).Return(&models.Department{ID: deptID}, nil)
	userRepo.On("UpdateRoleAndDepartment", mock.Anything, int64(7), "staff", &deptID).Return(nil)
	userRepo.On("GetByID", mock.Anything, int64(7)).Return(&models.User{
		ID:           7,
		Role:         models.RoleStaff,
		DepartmentID: &deptID,
	}, nil)

	profile, err := service.Update(context.Background(), 7, dto.UpdateUserRequest{
		Role:         "staff",
		DepartmentID: &deptID,
	})

	require.NoError(t, err)
	assert.Equal(t, "staff", profile.Role)
	userRepo.AssertExpectations(t)
}

func TestUserDelete_RejectsSelfDeletion(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewUserService(userRepo, new(MockDepartmentRepository))

	err := service.Delete(context.Background(), 7, 7)

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUserDelete_OtherAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewUserService(userRepo, new(MockDepartmentRepository))

	userRepo.On("Delete", mock.Anything, int64(9)).Return(nil)

	err := service.Delete(context.Background(), 9, 7)

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}
