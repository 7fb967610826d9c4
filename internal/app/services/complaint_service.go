package services

import (
	"context"

	"github.com/mrucampus/helpdesk/internal/app/models"
	"github.com/mrucampus/helpdesk/internal/app/models/dto"
	"github.com/mrucampus/helpdesk/internal/app/repositories"
	"github.com/mrucampus/helpdesk/internal/pkg/apperrors"
	"github.com/mrucampus/helpdesk/internal/pkg/dberrors"
	"github.com/mrucampus/helpdesk/internal/pkg/email"
	"github.com/mrucampus/helpdesk/internal/pkg/logger"
	"github.com/mrucampus/helpdesk/internal/pkg/routing"
	"github.com/mrucampus/helpdesk/internal/pkg/ticket"
)

// ticketAttempts bounds the regenerate-and-retry loop on ticket id collisions
const ticketAttempts = 3

// ComplaintRepository is the persistence surface the complaint service needs
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	List(ctx context.Context, scope repositories.ComplaintScope, filter dto.ComplaintFilter) ([]models.Complaint, error)
	GetByID(ctx context.Context, id int64) (*models.Complaint, error)
	ListUpdates(ctx context.Context, complaintID int64) ([]models.ComplaintUpdate, error)
	UpdateWithAudit(ctx context.Context, complaintID int64, req dto.UpdateComplaintRequest, attachment *string, updatedBy int64) error
	Stats(ctx context.Context, scope repositories.ComplaintScope) (*dto.ComplaintStats, error)
	Analytics(ctx context.Context) (*dto.ComplaintAnalytics, error)
}

// DepartmentRepository is the persistence surface for department lookups
type DepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetByCategoryKey(ctx context.Context, categoryKey string) (*models.Department, error)
	ListWithCounts(ctx context.Context) ([]models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// ComplaintService handles complaint submission, listing, updates and stats
type ComplaintService struct {
	complaintRepo  ComplaintRepository
	departmentRepo DepartmentRepository
	userRepo       UserRepository
	mailer         email.Mailer
	adminEmail     string
}

// NewComplaintService creates a new complaint service
func NewComplaintService(
	complaintRepo ComplaintRepository,
	departmentRepo DepartmentRepository,
	userRepo UserRepository,
	mailer email.Mailer,
	adminEmail string,
) *ComplaintService {
	return &ComplaintService{
		complaintRepo:  complaintRepo,
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
		mailer:         mailer,
		adminEmail:     adminEmail,
	}
}

// Create registers a complaint, routes it to the department owning its
// category, and dispatches notifications in the background. The HTTP
// response never waits on SMTP.
func (s *ComplaintService) Create(ctx context.Context, userID int64, req dto.CreateComplaintRequest, attachment *string) (*models.Complaint, error) {
	priority := req.Priority
	if priority == "" {
		priority = string(models.PriorityMedium)
	}
	if !models.ValidPriority(priority) {
		return nil, apperrors.NewValidationError("priority must be one of low, medium, high")
	}

	// The submitted category is stored verbatim; the canonical key only
	// drives department routing
	department, err := s.departmentRepo.GetByCategoryKey(ctx, routing.CanonicalKey(req.Category))
	if err != nil {
		return nil, err
	}

	complaint := &models.Complaint{
		UserID:      userID,
		Category:    req.Category,
		Subject:     req.Subject,
		Description: req.Description,
		Location:    req.Location,
		Block:       req.Block,
		RoomNo:      req.RoomNo,
		Priority:    models.ComplaintPriority(priority),
		Attachment:  attachment,
	}
	if department != nil {
		complaint.DepartmentID = &department.ID
	}

	// Ticket ids are random; a collision surfaces as a unique violation
	// and we regenerate
	for attempt := 0; attempt < ticketAttempts; attempt++ {
		tid, err := ticket.New()
		if err != nil {
			return nil, err
		}
		complaint.TicketID = tid

		err = s.complaintRepo.Create(ctx, complaint)
		if err == nil {
			break
		}
		if dberrors.IsUniqueViolation(err) && attempt < ticketAttempts-1 {
			continue
		}
		return nil, err
	}

	userName, userEmail, err := s.userRepo.GetNameEmail(ctx, userID)
	if err != nil {
		// The complaint is already stored; skip notifications rather
		// than fail the request
		logger.Error().Err(err).Str("ticketId", complaint.TicketID).
			Msg("Failed to load requester contact for notifications")
		return complaint, nil
	}

	go s.notifyCreated(*complaint, department, userName, userEmail)

	return complaint, nil
}

// notifyCreated sends the acknowledgement and department alerts. Runs
// detached from the request; failures are logged and swallowed.
func (s *ComplaintService) notifyCreated(complaint models.Complaint, department *models.Department, userName, userEmail string) {
	departmentName := "General"
	if department != nil {
		departmentName = department.Name
	}

	if err := s.mailer.SendComplaintCreated(email.ComplaintCreatedData{
		To:         userEmail,
		UserName:   userName,
		TicketID:   complaint.TicketID,
		Subject:    complaint.Subject,
		Category:   complaint.Category,
		Priority:   string(complaint.Priority),
		Department: departmentName,
	}); err != nil {
		logger.Error().Err(err).Str("ticketId", complaint.TicketID).Msg("Failed to send complaint acknowledgement")
	}

	alert := email.DepartmentAlertData{
		TicketID:    complaint.TicketID,
		Subject:     complaint.Subject,
		Category:    complaint.Category,
		Priority:    string(complaint.Priority),
		UserName:    userName,
		Description: complaint.Description,
	}

	if department != nil && department.Email != "" {
		alert.To = department.Email
		if err := s.mailer.SendDepartmentAlert(alert); err != nil {
			logger.Error().Err(err).Str("ticketId", complaint.TicketID).Msg("Failed to send department alert")
		}
	}

	if s.adminEmail != "" {
		alert.To = s.adminEmail
		if err := s.mailer.SendDepartmentAlert(alert); err != nil {
			logger.Error().Err(err).Str("ticketId", complaint.TicketID).Msg("Failed to send admin alert")
		}
	}
}

// List returns the complaints visible to the scope with optional filters
func (s *ComplaintService) List(ctx context.Context, scope repositories.ComplaintScope, filter dto.ComplaintFilter) ([]models.Complaint, error) {
	complaints, err := s.complaintRepo.List(ctx, scope, filter)
	if err != nil {
		return nil, err
	}
	if complaints == nil {
		complaints = []models.Complaint{}
	}
	return complaints, nil
}

// GetByID returns a complaint with its full ordered update history
func (s *ComplaintService) GetByID(ctx context.Context, id int64) (*dto.ComplaintDetail, error) {
	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates, err := s.complaintRepo.ListUpdates(ctx, id)
	if err != nil {
		return nil, err
	}
	if updates == nil {
		updates = []models.ComplaintUpdate{}
	}

	return &dto.ComplaintDetail{
		Complaint: *complaint,
		Updates:   updates,
	}, nil
}

// Update applies a partial update, appends the audit row, and notifies the
// requester in the background. The notification always goes out, carrying
// the prior status when the update did not change it.
func (s *ComplaintService) Update(ctx context.Context, id int64, req dto.UpdateComplaintRequest, attachment *string, updatedBy int64) (*dto.ComplaintDetail, error) {
	if req.Status != nil && !models.ValidStatus(*req.Status) {
		return nil, apperrors.NewValidationError("status must be one of pending, assigned, in_progress, resolved")
	}
	if req.Priority != nil && !models.ValidPriority(*req.Priority) {
		return nil, apperrors.NewValidationError("priority must be one of low, medium, high")
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
	}

	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.complaintRepo.UpdateWithAudit(ctx, id, req, attachment, updatedBy); err != nil {
		return nil, err
	}

	status := string(complaint.Status)
	if req.Status != nil {
		status = *req.Status
	}
	data := email.StatusUpdateData{
		To:       complaint.UserEmail,
		UserName: complaint.UserName,
		TicketID: complaint.TicketID,
		Subject:  complaint.Subject,
		Status:   status,
	}
	if req.Message != nil {
		data.Remarks = *req.Message
	}
	go func() {
		if err := s.mailer.SendStatusUpdate(data); err != nil {
			logger.Error().Err(err).Str("ticketId", data.TicketID).Msg("Failed to send status update notification")
		}
	}()

	return s.GetByID(ctx, id)
}

// Stats returns the status breakdown for the scope
func (s *ComplaintService) Stats(ctx context.Context, scope repositories.ComplaintScope) (*dto.ComplaintStats, error) {
	return s.complaintRepo.Stats(ctx, scope)
}

// Analytics returns the admin dashboard aggregates
func (s *ComplaintService) Analytics(ctx context.Context) (*dto.ComplaintAnalytics, error) {
	return s.complaintRepo.Analytics(ctx)
}
