package services

import (
	"context"

	"github.com/mrucampus/helpdesk/internal/app/models"
	"github.com/mrucampus/helpdesk/internal/app/models/dto"
	"github.com/mrucampus/helpdesk/internal/pkg/apperrors"
)

// UserService handles the admin-facing user administration
type UserService struct {
	userRepo       UserRepository
	departmentRepo DepartmentRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository, departmentRepo DepartmentRepository) *UserService {
	return &UserService{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
	}
}

// List returns all users, optionally filtered by a name or email substring
func (s *UserService) List(ctx context.Context, search string) ([]dto.UserProfile, error) {
	users, err := s.userRepo.List(ctx, search)
	if err != nil {
		return nil, err
	}

	profiles := make([]dto.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, newUserProfile(&users[i]))
	}
	return profiles, nil
}

// Update changes a user's role and department assignment
func (s *UserService) Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (*dto.UserProfile, error) {
	if !models.ValidRole(req.Role) {
		return nil, apperrors.NewValidationError("role must be one of student, faculty, staff, admin")
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.UpdateRoleAndDepartment(ctx, id, req.Role, req.DepartmentID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := newUserProfile(user)
	return &profile, nil
}

// Delete removes a user account. The caller may not delete itself.
func (s *UserService) Delete(ctx context.Context, id, callerID int64) error {
	if id == callerID {
		return apperrors.NewValidationError("cannot delete your own account")
	}
	return s.userRepo.Delete(ctx, id)
}
