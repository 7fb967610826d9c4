package services

import (
	"context"
	"sync"

	"github.com/mrucampus/helpdesk/internal/app/models"
	"github.com/mrucampus/helpdesk/internal/app/models/dto"
	"github.com/mrucampus/helpdesk/internal/app/repositories"
	"github.com/mrucampus/helpdesk/internal/pkg/email"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UIDExists(ctx context.Context, uid string) (bool, error) {
	args := m.Called(ctx, uid)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetNameEmail(ctx context.Context, id int64) (string, string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id int64, name string, phone *string) error {
	args := m.Called(ctx, id, name, phone)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string) ([]models.User, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRoleAndDepartment(ctx context.Context, id int64, role string, departmentID *int64) error {
	args := m.Called(ctx, id, role, departmentID)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockComplaintRepository is a testify mock of ComplaintRepository
type MockComplaintRepository struct {
	mock.Mock
}

func (m *MockComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *MockComplaintRepository) List(ctx context.Context, scope repositories.ComplaintScope, filter dto.ComplaintFilter) ([]models.Complaint, error) {
	args := m.Called(ctx, scope, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) ListUpdates(ctx context.Context, complaintID int64) ([]models.ComplaintUpdate, error) {
	args := m.Called(ctx, complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ComplaintUpdate), args.Error(1)
}

func (m *MockComplaintRepository) UpdateWithAudit(ctx context.Context, complaintID int64, req dto.UpdateComplaintRequest, attachment *string, updatedBy int64) error {
	args := m.Called(ctx, complaintID, req, attachment, updatedBy)
	return args.Error(0)
}

func (m *MockComplaintRepository) Stats(ctx context.Context, scope repositories.ComplaintScope) (*dto.ComplaintStats, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ComplaintStats), args.Error(1)
}

func (m *MockComplaintRepository) Analytics(ctx context.Context) (*dto.ComplaintAnalytics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ComplaintAnalytics), args.Error(1)
}

// MockDepartmentRepository is a testify mock of DepartmentRepository
type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

func (m *MockDepartmentRepository) GetByCategoryKey(ctx context.Context, categoryKey string) (*models.Department, error) {
	args := m.Called(ctx, categoryKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

func (m *MockDepartmentRepository) ListWithCounts(ctx context.Context) ([]models.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Department), args.Error(1)
}

func (m *MockDepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFeedbackRepository is a testify mock of FeedbackRepository
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *MockFeedbackRepository) ExistsForComplaint(ctx context.Context, complaintID int64) (bool, error) {
	args := m.Called(ctx, complaintID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeedbackRepository) GetByComplaintID(ctx context.Context, complaintID int64) (*models.Feedback, error) {
	args := m.Called(ctx, complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) ListByDepartment(ctx context.Context, departmentID int64) ([]models.Feedback, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) ListAll(ctx context.Context) ([]models.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) DepartmentRatings(ctx context.Context) ([]models.DepartmentRating, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DepartmentRating), args.Error(1)
}

// MockTokenIssuer is a testify mock of TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

// scopeFor builds a minimal visibility scope for list and stats tests
func scopeFor(role models.Role, userID int64) repositories.ComplaintScope {
	return repositories.ComplaintScope{Role: role, UserID: userID}
}

// stubMailer records nothing and never fails; notification sends run on
// background goroutines so tests only need a safe no-op
type stubMailer struct{}

func (stubMailer) SendComplaintCreated(email.ComplaintCreatedData) error { return nil }
func (stubMailer) SendStatusUpdate(email.StatusUpdateData) error         { return nil }
func (stubMailer) SendDepartmentAlert(email.DepartmentAlertData) error   { return nil }

// recordingMailer captures status update sends so tests can assert on
// notifications dispatched from background goroutines
type recordingMailer struct {
	mu            sync.Mutex
	statusUpdates []email.StatusUpdateData
}

func (m *recordingMailer) SendComplaintCreated(email.ComplaintCreatedData) error { return nil }
func (m *recordingMailer) SendDepartmentAlert(email.DepartmentAlertData) error   { return nil }

func (m *recordingMailer) SendStatusUpdate(data email.StatusUpdateData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusUpdates = append(m.statusUpdates, data)
	return nil
}

func (m *recordingMailer) StatusUpdates() []email.StatusUpdateData {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]email.StatusUpdateData(nil), m.statusUpdates...)
}
