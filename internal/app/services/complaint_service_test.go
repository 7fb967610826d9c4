package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mrucampus/helpdesk/internal/app/models"
	"github.com/mrucampus/helpdesk/internal/app/models/dto"
	"github.com/mrucampus/helpdesk/internal/pkg/apperrors"
	"github.com/mrucampus/helpdesk/internal/pkg/ticket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newComplaintServiceForTest(complaintRepo *MockComplaintRepository, departmentRepo *MockDepartmentRepository, userRepo *MockUserRepository) *ComplaintService {
	return NewComplaintService(complaintRepo, departmentRepo, userRepo, stubMailer{}, "helpdesk-admin@mru.edu")
}

func TestCreate_RoutesUnknownCategoryToOthers(t *testing.T) {
	// Arrange
	complaintRepo := new(MockComplaintRepository)
	departmentRepo := new(MockDepartmentRepository)
	userRepo := new(MockUserRepository)
	service := newComplaintServiceForTest(complaintRepo, departmentRepo, userRepo)

	generalAdmin := &models.Department{ID: 9, Name: "General Administration", CategoryKey: "others"}
	departmentRepo.On("GetByCategoryKey", mock.Anything, "others").Return(generalAdmin, nil)
	complaintRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	userRepo.On("GetNameEmail", mock.Anything, int64(7)).Return("Aisha Verma", "aisha@mru.edu", nil)

	// Act
	complaint, err := service.Create(context.Background(), 7, dto.CreateComplaintRequest{
		Category:    "swimming_pool",
		Subject:     "Broken locker",
		Description: "Locker 14 does not close",
	}, nil)

	// Assert
	require.NoError(t, err)
	// The submitted category is kept verbatim; only routing canonicalizes
	assert.Equal(t, "swimming_pool", complaint.Category)
	require.NotNil(t, complaint.DepartmentID)
	assert.Equal(t, int64(9), *complaint.DepartmentID)
	assert.Equal(t, models.PriorityMedium, complaint.Priority)
	assert.True(t, ticket.Valid(complaint.TicketID))
}

func TestCreate_LeavesComplaintUnassignedWhenNoDepartmentClaimsCategory(t *testing.T) {
	complaintRepo := new(MockComplaintRepository)
	departmentRepo := new(MockDepartmentRepository)
	userRepo := new(MockUserRepository)
	service := newComplaintServiceForTest(complaintRepo, departmentRepo, userRepo)

	departmentRepo.On("GetByCategoryKey", mock.Anything, "library").Return(nil, nil)
	complaintRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	userRepo.On("GetNameEmail", mock.Anything, int64(7)).Return("Aisha Verma", "aisha@mru.edu", nil)

	complaint, err := service.Create(context.Background(), 7, dto.CreateComplaintRequest{
		Category:    "library",
		Subject:     "Missing book",
		Description: "The catalog lists a book the shelf does not have",
	}, nil)

	require.NoError(t, err)
	assert.Nil(t, complaint.DepartmentID)
}

func TestCreate_RetriesOnTicketCollision(t *testing.T) {
	complaintRepo := new(MockComplaintRepository)
	departmentRepo := new(MockDepartmentRepository)
	userRepo := new(MockUserRepository)
	service := newComplaintServiceForTest(complaintRepo, departmentRepo, userRepo)

	departmentRepo.On("GetByCategoryKey", mock.Anything, "library").Return(nil, nil)

	duplicate := &pgconn.PgError{Code: "23505", ConstraintName: "complaints_ticket_id_key"}
	complaintRepo.On("Create", mock.Anything, mock.Anything).Return(duplicate).Once()
	complaintRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	userRepo.On("GetNameEmail", mock.Anything, int64(7)).Return("Aisha Verma", "aisha@mru.edu", nil)

	complaint, err := service.Create(context.Background(), 7, dto.CreateComplaintRequest{
		Category:    "library",
		Subject:     "Missing book",
		Description: "See above",
	}, nil)

	require.NoError(t, err)
	assert.True(t, ticket.Valid(complaint.TicketID))
	complaintRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestCreate_RejectsUnknownPriority(t *testing.T) {
	service := newComplaintServiceForTest(new(MockComplaintRepository), new(MockDepartmentRepository), new(MockUserRepository))

	_, err := service.Create(context.Background(), 7, dto.CreateComplaintRequest{
		Category:    "library",
		Subject:     "x",
		Description: "y",
		Priority:    "urgent",
	}, nil)

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdate_RejectsUnknownStatus(t *testing.T) {
	service := newComplaintServiceForTest(new(MockComplaintRepository), new(MockDepartmentRepository), new(MockUserRepository))

	badStatus := "closed"
	_, err := service.Update(context.Background(), 1, dto.UpdateComplaintRequest{Status: &badStatus}, nil, 2)

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdate_UnknownDepartment(t *testing.T) {
	complaintRepo := new(MockComplaintRepository)
	departmentRepo := new(MockDepartmentRepository)
	service := newComplaintServiceForTest(complaintRepo, departmentRepo, new(MockUserRepository))

	deptID := int64(42)
	departmentRepo.On("GetByID", mock.Anything, deptID).Return(nil, apperrors.ErrDepartmentNotFound)

	_, err := service.Update(context.Background(), 1, dto.UpdateComplaintRequest{DepartmentID: &deptID}, nil, 2)

	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	complaintRepo.AssertNotCalled(t, "UpdateWithAudit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_AppendsAuditRowEvenWithoutChanges(t *testing.T) {
	complaintRepo := new(MockComplaintRepository)
	service := newComplaintServiceForTest(complaintRepo, new(MockDepartmentRepository), new(MockUserRepository))

	existing := &models.Complaint{
		ID:       1,
		TicketID: "MRU-AAAA1111",
		UserID:   7,
		Status:   models.StatusPending,
	}
	req := dto.UpdateComplaintRequest{}

	complaintRepo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
	complaintRepo.On("UpdateWithAudit", mock.Anything, int64(1), req, (*string)(nil), int64(2)).Return(nil)
	complaintRepo.On("ListUpdates", mock.Anything, int64(1)).Return([]models.ComplaintUpdate{}, nil)

	detail, err := service.Update(context.Background(), 1, req, nil, 2)

	require.NoError(t, err)
	assert.Equal(t, "MRU-AAAA1111", detail.TicketID)
	complaintRepo.AssertCalled(t, "UpdateWithAudit", mock.Anything, int64(1), req, (*string)(nil), int64(2))
}

func TestUpdate_RecordsAttachmentOnHistoryEntry(t *testing.T) {
	complaintRepo := new(MockComplaintRepository)
	service := newComplaintServiceForTest(complaintRepo, new(MockDepartmentRepository), new(MockUserRepository))

	existing := &models.Complaint{
		ID:       1,
		TicketID: "MRU-AAAA1111",
		UserID:   7,
		Status:   models.StatusPending,
	}
	status := "resolved"
	req := dto.UpdateComplaintRequest{Status: &status}
	attachment := "repair-receipt.pdf"

	complaintRepo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
	complaintRepo.On("UpdateWithAudit", mock.Anything, int64(1), req, &attachment, int64(2)).Return(nil)
	complaintRepo.On("ListUpdates", mock.Anything, int64(1)).Return([]models.ComplaintUpdate{}, nil)

	_, err := service.Update(context.Background(), 1, req, &attachment, 2)

	require.NoError(t, err)
	complaintRepo.AssertCalled(t, "UpdateWithAudit", mock.Anything, int64(1), req, &attachment, int64(2))
}

func TestUpdate_NotifiesWithPriorStatusWhenNoneSupplied(t *testing.T) {
	complaintRepo := new(MockComplaintRepository)
	mailer := &recordingMailer{}
	service := NewComplaintService(complaintRepo, new(MockDepartmentRepository), new(MockUserRepository), mailer, "helpdesk-admin@mru.edu")

	existing := &models.Complaint{
		ID:        1,
		TicketID:  "MRU-AAAA1111",
		UserID:    7,
		UserEmail: "aisha@mru.edu",
		Status:    models.StatusPending,
	}
	message := "Technician visit scheduled"
	req := dto.UpdateComplaintRequest{Message: &message}

	complaintRepo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
	complaintRepo.On("UpdateWithAudit", mock.Anything, int64(1), req, (*string)(nil), int64(2)).Return(nil)
	complaintRepo.On("ListUpdates", mock.Anything, int64(1)).Return([]models.ComplaintUpdate{}, nil)

	_, err := service.Update(context.Background(), 1, req, nil, 2)
	require.NoError(t, err)

	// The notification goes out on every update, carrying the prior
	// status when the caller did not change it
	require.Eventually(t, func() bool {
		return len(mailer.StatusUpdates()) == 1
	}, time.Second, 10*time.Millisecond)

	sent := mailer.StatusUpdates()[0]
	assert.Equal(t, "pending", sent.Status)
	assert.Equal(t, "aisha@mru.edu", sent.To)
	assert.Equal(t, message, sent.Remarks)
}

func TestGetByID_NotFound(t *testing.T) {
	complaintRepo := new(MockComplaintRepository)
	service := newComplaintServiceForTest(complaintRepo, new(MockDepartmentRepository), new(MockUserRepository))

	complaintRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, apperrors.ErrComplaintNotFound)

	_, err := service.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
}

func TestList_NilResultBecomesEmptySlice(t *testing.T) {
	complaintRepo := new(MockComplaintRepository)
	service := newComplaintServiceForTest(complaintRepo, new(MockDepartmentRepository), new(MockUserRepository))

	complaintRepo.On("List", mock.Anything, mock.Anything, mock.Anything).Return([]models.Complaint(nil), nil)

	complaints, err := service.List(context.Background(), scopeFor(models.RoleAdmin, 1), dto.ComplaintFilter{})

	require.NoError(t, err)
	assert.NotNil(t, complaints)
	assert.Empty(t, complaints)
}
