package services

import (
	"context"
	"errors"
	"time"

	"github.com/mrucampus/helpdesk/internal/app/models"
	"github.com/mrucampus/helpdesk/internal/app/models/dto"
	"github.com/mrucampus/helpdesk/internal/pkg/apperrors"
	"github.com/mrucampus/helpdesk/internal/pkg/auth"
)

// UserRepository is the persistence surface the auth and user services need
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UIDExists(ctx context.Context, uid string) (bool, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetNameEmail(ctx context.Context, id int64) (name, email string, err error)
	UpdateProfile(ctx context.Context, id int64, name string, phone *string) error
	List(ctx context.Context, search string) ([]models.User, error)
	UpdateRoleAndDepartment(ctx context.Context, id int64, role string, departmentID *int64) error
	Delete(ctx context.Context, id int64) error
}

// TokenIssuer signs access tokens
type TokenIssuer interface {
	GenerateToken(user *models.User) (string, error)
}

// AuthService handles registration, login and profile operations
type AuthService struct {
	userRepo   UserRepository
	jwtService TokenIssuer
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo UserRepository, jwtService TokenIssuer) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user account. The requested role is stored as
// given after validation against the known role set; an empty role
// defaults to student.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserProfile, error) {
	role := req.Role
	if role == "" {
		role = string(models.RoleStudent)
	}
	if !models.ValidRole(role) {
		return nil, apperrors.NewValidationError("role must be one of student, faculty, staff, admin")
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	if req.UID != nil && *req.UID != "" {
		exists, err := s.userRepo.UIDExists(ctx, *req.UID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrUIDAlreadyExists
		}
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     models.Role(role),
		UID:      req.UID,
		Phone:    req.Phone,
	}

	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	profile := newUserProfile(user)
	return &profile, nil
}

// Login verifies credentials and returns a signed token with the user
// projection. Unknown email and wrong password produce the same error so
// the response does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  newUserProfile(user),
	}, nil
}

// GetProfile returns the profile of an authenticated user. A valid token
// for a since-deleted account yields not-found.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := newUserProfile(user)
	return &profile, nil
}

// UpdateProfile changes the caller's own name and phone
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*dto.UserProfile, error) {
	if err := s.userRepo.UpdateProfile(ctx, userID, req.Name, req.Phone); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

// newUserProfile projects a user onto its public representation
func newUserProfile(user *models.User) dto.UserProfile {
	return dto.UserProfile{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           string(user.Role),
		UID:            user.UID,
		Phone:          user.Phone,
		DepartmentID:   user.DepartmentID,
		DepartmentName: user.DepartmentName,
		CreatedAt:      user.CreatedAt.Format(time.RFC3339),
	}
}
