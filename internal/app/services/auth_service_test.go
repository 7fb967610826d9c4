package services

import (
	"context"
	"testing"

	"github.com/mrucampus/helpdesk/internal/app/models"
	"github.com/mrucampus/helpdesk/internal/app/models/dto"
	"github.com/mrucampus/helpdesk/internal/pkg/apperrors"
	"github.com/mrucampus/helpdesk/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegister_DefaultsRoleToStudent(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, new(MockTokenIssuer))

	userRepo.On("EmailExists", mock.Anything, "aisha@mru.edu").Return(false, nil)
	userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Role == models.RoleStudent
	})).Return(int64(1), nil)

	// Act
	profile, err := service.Register(context.Background(), dto.RegisterRequest{
		Name:     "Aisha Verma",
		Email:    "aisha@mru.edu",
		Password: "s3cret123",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "student", profile.Role)
	userRepo.AssertExpectations(t)
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	service := NewAuthService(new(MockUserRepository), new(MockTokenIssuer))

	_, err := service.Register(context.Background(), dto.RegisterRequest{
		Name:     "Aisha Verma",
		Email:    "aisha@mru.edu",
		Password: "s3cret123",
		Role:     "superuser",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, new(MockTokenIssuer))

	userRepo.On("EmailExists", mock.Anything, "aisha@mru.edu").Return(true, nil)

	_, err := service.Register(context.Background(), dto.RegisterRequest{
		Name:     "Aisha Verma",
		Email:    "aisha@mru.edu",
		Password: "s3cret123",
	})

	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateUID(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, new(MockTokenIssuer))

	uid := "MRU2021045"
	userRepo.On("EmailExists", mock.Anything, "aisha@mru.edu").Return(false, nil)
	userRepo.On("UIDExists", mock.Anything, uid).Return(true, nil)

	_, err := service.Register(context.Background(), dto.RegisterRequest{
		Name:     "Aisha Verma",
		Email:    "aisha@mru.edu",
		Password: "s3cret123",
		UID:      &uid,
	})

	assert.ErrorIs(t, err, apperrors.ErrUIDAlreadyExists)
}

func TestLogin_UnknownEmailAndWrongPasswordLookTheSame(t *testing.T) {
	hashed, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, new(MockTokenIssuer))

	userRepo.On("GetByEmail", mock.Anything, "nobody@mru.edu").Return(nil, apperrors.ErrUserNotFound)
	userRepo.On("GetByEmail", mock.Anything, "aisha@mru.edu").Return(&models.User{
		ID:       7,
		Email:    "aisha@mru.edu",
		Password: hashed,
		Role:     models.RoleStudent,
	}, nil)

	_, errUnknown := service.Login(context.Background(), dto.LoginRequest{
		Email: "nobody@mru.edu", Password: "whatever",
	})
	_, errWrongPass := service.Login(context.Background(), dto.LoginRequest{
		Email: "aisha@mru.edu", Password: "wrong-password",
	})

	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestLogin_Success(t *testing.T) {
	hashed, err := auth.HashPassword("s3cret123")
	require.NoError(t, err)

	deptID := int64(3)
	user := &models.User{
		ID:           7,
		Name:         "Staff Member",
		Email:        "staff@mru.edu",
		Password:     hashed,
		Role:         models.RoleStaff,
		DepartmentID: &deptID,
	}

	userRepo := new(MockUserRepository)
	issuer := new(MockTokenIssuer)
	service := NewAuthService(userRepo, issuer)

	userRepo.On("GetByEmail", mock.Anything, "staff@mru.edu").Return(user, nil)
	issuer.On("GenerateToken", user).Return("signed-token", nil)

	resp, err := service.Login(context.Background(), dto.LoginRequest{
		Email: "staff@mru.edu", Password: "s3cret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "staff", resp.User.Role)
	require.NotNil(t, resp.User.DepartmentID)
	assert.Equal(t, deptID, *resp.User.DepartmentID)
}

func TestGetProfile_DeletedAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, new(MockTokenIssuer))

	userRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrUserNotFound)

	_, err := service.GetProfile(context.Background(), 99)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
