package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mrucampus/helpdesk/internal/app/models"
	"github.com/mrucampus/helpdesk/internal/app/models/dto"
	"github.com/mrucampus/helpdesk/internal/pkg/apperrors"
	"github.com/mrucampus/helpdesk/internal/pkg/helpers"
)

// ComplaintScope narrows complaint queries to the rows the caller may see.
// Students and faculty see their own complaints, staff see their
// department's, admins see everything.
type ComplaintScope struct {
	Role         models.Role
	UserID       int64
	DepartmentID *int64
}

// ComplaintRepository handles database operations for complaints and their
// update history
type ComplaintRepository struct {
	db *pgxpool.Pool
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{
		db: db,
	}
}

// Create inserts a new complaint. A unique violation on the ticket id is
// returned unwrapped so the caller can regenerate and retry.
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	query := `
		INSERT INTO complaints (ticket_id, user_id, subject, description, category,
		                        department_id, location, block, room_no, priority, attachment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, status, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		complaint.TicketID,
		complaint.UserID,
		complaint.Subject,
		complaint.Description,
		complaint.Category,
		helpers.GetNullInt64(complaint.DepartmentID),
		helpers.GetNullString(complaint.Location),
		helpers.GetNullString(complaint.Block),
		helpers.GetNullString(complaint.RoomNo),
		complaint.Priority,
		helpers.GetNullString(complaint.Attachment),
	).Scan(&complaint.ID, &complaint.Status, &complaint.CreatedAt, &complaint.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

const complaintSelectColumns = `
	c.id, c.ticket_id, c.user_id, c.subject, c.description, c.category,
	c.department_id, c.location, c.block, c.room_no, c.status, c.priority,
	c.attachment, c.created_at, c.updated_at,
	u.name AS user_name, u.email AS user_email, d.department_name
`

func scanComplaint(row pgx.Row, complaint *models.Complaint) error {
	return row.Scan(
		&complaint.ID,
		&complaint.TicketID,
		&complaint.UserID,
		&complaint.Subject,
		&complaint.Description,
		&complaint.Category,
		&complaint.DepartmentID,
		&complaint.Location,
		&complaint.Block,
		&complaint.RoomNo,
		&complaint.Status,
		&complaint.Priority,
		&complaint.Attachment,
		&complaint.CreatedAt,
		&complaint.UpdatedAt,
		&complaint.UserName,
		&complaint.UserEmail,
		&complaint.DepartmentName,
	)
}

// scopeCondition renders the visibility clause for a scope, or "" for admins
func scopeCondition(scope ComplaintScope, args *[]interface{}) string {
	switch scope.Role {
	case models.RoleAdmin:
		return ""
	case models.RoleStaff:
		if scope.DepartmentID == nil {
			// Staff without a department assignment see nothing
			return "FALSE"
		}
		*args = append(*args, *scope.DepartmentID)
		return fmt.Sprintf("c.department_id = $%d", len(*args))
	default:
		*args = append(*args, scope.UserID)
		return fmt.Sprintf("c.user_id = $%d", len(*args))
	}
}

// List retrieves complaints visible to the scope, optionally filtered,
// newest first
func (r *ComplaintRepository) List(ctx context.Context, scope ComplaintScope, filter dto.ComplaintFilter) ([]models.Complaint, error) {
	var args []interface{}
	var conditions []string

	if cond := scopeCondition(scope, &args); cond != "" {
		conditions = append(conditions, cond)
	}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("c.status = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("c.category = $%d", len(args)))
	}
	if filter.DepartmentID != 0 {
		args = append(args, filter.DepartmentID)
		conditions = append(conditions, fmt.Sprintf("c.department_id = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions,
			fmt.Sprintf("(c.ticket_id ILIKE $%d OR c.subject ILIKE $%d OR u.name ILIKE $%d)", n, n, n))
	}

	query := `
		SELECT ` + complaintSelectColumns + `
		FROM complaints c
		JOIN users u ON c.user_id = u.id
		LEFT JOIN departments d ON c.department_id = d.id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY c.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing complaints: %w", err)
	}
	defer rows.Close()

	var complaints []models.Complaint
	for rows.Next() {
		var complaint models.Complaint
		if err := scanComplaint(rows, &complaint); err != nil {
			return nil, err
		}
		complaints = append(complaints, complaint)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return complaints, nil
}

// GetByID retrieves a single complaint with requester and department joined
func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	query := `
		SELECT ` + complaintSelectColumns + `
		FROM complaints c
		JOIN users u ON c.user_id = u.id
		LEFT JOIN departments d ON c.department_id = d.id
		WHERE c.id = $1
	`

	var complaint models.Complaint
	err := scanComplaint(r.db.QueryRow(ctx, query, id), &complaint)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("error retrieving complaint: %w", err)
	}

	return &complaint, nil
}

// ListUpdates retrieves the audit trail of a complaint, oldest first
func (r *ComplaintRepository) ListUpdates(ctx context.Context, complaintID int64) ([]models.ComplaintUpdate, error) {
	query := `
		SELECT cu.id, cu.complaint_id, cu.updated_by, cu.message, cu.status, cu.attachment,
		       cu.created_at, u.name AS updater_name
		FROM complaint_updates cu
		JOIN users u ON cu.updated_by = u.id
		WHERE cu.complaint_id = $1
		ORDER BY cu.created_at ASC
	`

	rows, err := r.db.Query(ctx, query, complaintID)
	if err != nil {
		return nil, fmt.Errorf("error listing complaint updates: %w", err)
	}
	defer rows.Close()

	var updates []models.ComplaintUpdate
	for rows.Next() {
		var update models.ComplaintUpdate
		if err := rows.Scan(
			&update.ID,
			&update.ComplaintID,
			&update.UpdatedBy,
			&update.Message,
			&update.Status,
			&update.Attachment,
			&update.CreatedAt,
			&update.UpdaterName,
		); err != nil {
			return nil, err
		}
		updates = append(updates, update)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return updates, nil
}

// UpdateWithAudit applies a partial update to a complaint and appends the
// audit row in the same transaction. Every call produces exactly one audit
// row, even when no field changed. COALESCE keeps untouched columns as-is.
// An attachment uploaded with the update lands on the audit row.
func (r *ComplaintRepository) UpdateWithAudit(ctx context.Context, complaintID int64, req dto.UpdateComplaintRequest, attachment *string, updatedBy int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	updateQuery := `
		UPDATE complaints
		SET status = COALESCE($1, status),
		    priority = COALESCE($2, priority),
		    department_id = COALESCE($3, department_id),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
	`

	cmdTag, err := tx.Exec(ctx, updateQuery,
		helpers.GetNullString(req.Status),
		helpers.GetNullString(req.Priority),
		helpers.GetNullInt64(req.DepartmentID),
		complaintID,
	)
	if err != nil {
		return fmt.Errorf("error updating complaint: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrComplaintNotFound
	}

	auditQuery := `
		INSERT INTO complaint_updates (complaint_id, updated_by, message, status, attachment)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := tx.Exec(ctx, auditQuery,
		complaintID,
		updatedBy,
		helpers.GetNullString(req.Message),
		helpers.GetNullString(req.Status),
		helpers.GetNullString(attachment),
	); err != nil {
		return fmt.Errorf("error recording complaint update: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Stats aggregates complaint counts by status within the scope
func (r *ComplaintRepository) Stats(ctx context.Context, scope ComplaintScope) (*dto.ComplaintStats, error) {
	var args []interface{}
	where := ""
	if cond := scopeCondition(scope, &args); cond != "" {
		where = " WHERE " + cond
	}

	stats := &dto.ComplaintStats{}

	countByStatus := func(status string, dest *int64) error {
		query := `SELECT COUNT(*) FROM complaints c`
		queryArgs := append([]interface{}{}, args...)
		if status == "" {
			query += where
		} else {
			queryArgs = append(queryArgs, status)
			cond := fmt.Sprintf("c.status = $%d", len(queryArgs))
			if where == "" {
				query += " WHERE " + cond
			} else {
				query += where + " AND " + cond
			}
		}
		return r.db.QueryRow(ctx, query, queryArgs...).Scan(dest)
	}

	if err := countByStatus("", &stats.Total); err != nil {
		return nil, fmt.Errorf("error counting complaints: %w", err)
	}
	if err := countByStatus(string(models.StatusPending), &stats.Pending); err != nil {
		return nil, fmt.Errorf("error counting pending complaints: %w", err)
	}
	if err := countByStatus(string(models.StatusInProgress), &stats.InProgress); err != nil {
		return nil, fmt.Errorf("error counting in-progress complaints: %w", err)
	}
	if err := countByStatus(string(models.StatusResolved), &stats.Resolved); err != nil {
		return nil, fmt.Errorf("error counting resolved complaints: %w", err)
	}
	if err := countByStatus(string(models.StatusAssigned), &stats.Assigned); err != nil {
		return nil, fmt.Errorf("error counting assigned complaints: %w", err)
	}

	return stats, nil
}

// Analytics aggregates the complaint corpus for the admin dashboard
func (r *ComplaintRepository) Analytics(ctx context.Context) (*dto.ComplaintAnalytics, error) {
	analytics := &dto.ComplaintAnalytics{
		ByCategory: []dto.CategoryCount{},
		ByStatus:   []dto.StatusCount{},
		ByDept:     []dto.DepartmentBreakdown{},
		Daily:      []dto.DailyCount{},
	}

	byCategory := `
		SELECT category, COUNT(*) AS count
		FROM complaints
		GROUP BY category
		ORDER BY count DESC
	`
	rows, err := r.db.Query(ctx, byCategory)
	if err != nil {
		return nil, fmt.Errorf("error aggregating complaints by category: %w", err)
	}
	for rows.Next() {
		var c dto.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			rows.Close()
			return nil, err
		}
		analytics.ByCategory = append(analytics.ByCategory, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byStatus := `
		SELECT status, COUNT(*) AS count
		FROM complaints
		GROUP BY status
	`
	rows, err = r.db.Query(ctx, byStatus)
	if err != nil {
		return nil, fmt.Errorf("error aggregating complaints by status: %w", err)
	}
	for rows.Next() {
		var s dto.StatusCount
		if err := rows.Scan(&s.Status, &s.Count); err != nil {
			rows.Close()
			return nil, err
		}
		analytics.ByStatus = append(analytics.ByStatus, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byDept := `
		SELECT d.department_name,
		       COUNT(c.id) AS total,
		       COALESCE(SUM(CASE WHEN c.status = 'resolved' THEN 1 ELSE 0 END), 0) AS resolved,
		       COALESCE(SUM(CASE WHEN c.status = 'pending' THEN 1 ELSE 0 END), 0) AS pending
		FROM departments d
		LEFT JOIN complaints c ON d.id = c.department_id
		GROUP BY d.department_name
		ORDER BY total DESC
	`
	rows, err = r.db.Query(ctx, byDept)
	if err != nil {
		return nil, fmt.Errorf("error aggregating complaints by department: %w", err)
	}
	for rows.Next() {
		var d dto.DepartmentBreakdown
		if err := rows.Scan(&d.DepartmentName, &d.Total, &d.Resolved, &d.Pending); err != nil {
			rows.Close()
			return nil, err
		}
		analytics.ByDept = append(analytics.ByDept, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	daily := `
		SELECT DATE(created_at) AS day, COUNT(*) AS count
		FROM complaints
		WHERE created_at >= CURRENT_DATE - INTERVAL '30 days'
		GROUP BY DATE(created_at)
		ORDER BY day
	`
	rows, err = r.db.Query(ctx, daily)
	if err != nil {
		return nil, fmt.Errorf("error aggregating daily complaints: %w", err)
	}
	for rows.Next() {
		var d dto.DailyCount
		if err := rows.Scan(&d.Date, &d.Count); err != nil {
			rows.Close()
			return nil, err
		}
		analytics.Daily = append(analytics.Daily, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return analytics, nil
}
