package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mrucampus/helpdesk/internal/app/models"
	"github.com/mrucampus/helpdesk/internal/pkg/helpers"
)

// FeedbackRepository handles database operations for resolution feedback
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
	}
}

// Create inserts a feedback row. The department id is denormalized from the
// complaint at submission time so later rerouting does not move the rating.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	query := `
		INSERT INTO feedback (complaint_id, user_id, department_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		feedback.ComplaintID,
		feedback.UserID,
		helpers.GetNullInt64(feedback.DepartmentID),
		feedback.Rating,
		helpers.GetNullString(feedback.Comment),
	).Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating feedback: %w", err)
	}

	return nil
}

// ExistsForComplaint checks whether feedback was already submitted for a
// complaint
func (r *FeedbackRepository) ExistsForComplaint(ctx context.Context, complaintID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM feedback WHERE complaint_id = $1)`, complaintID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking feedback existence: %w", err)
	}
	return exists, nil
}

const feedbackSelectColumns = `
	f.id, f.complaint_id, f.user_id, f.department_id, f.rating, f.comment, f.created_at,
	u.name AS user_name, c.subject, c.ticket_id, d.department_name
`

func scanFeedback(row pgx.Row, feedback *models.Feedback) error {
	return row.Scan(
		&feedback.ID,
		&feedback.ComplaintID,
		&feedback.UserID,
		&feedback.DepartmentID,
		&feedback.Rating,
		&feedback.Comment,
		&feedback.CreatedAt,
		&feedback.UserName,
		&feedback.Subject,
		&feedback.TicketID,
		&feedback.DepartmentName,
	)
}

// GetByComplaintID retrieves the feedback for a complaint, or nil when none
// was submitted yet
func (r *FeedbackRepository) GetByComplaintID(ctx context.Context, complaintID int64) (*models.Feedback, error) {
	query := `
		SELECT ` + feedbackSelectColumns + `
		FROM feedback f
		JOIN users u ON f.user_id = u.id
		JOIN complaints c ON f.complaint_id = c.id
		LEFT JOIN departments d ON f.department_id = d.id
		WHERE f.complaint_id = $1
	`

	var feedback models.Feedback
	err := scanFeedback(r.db.QueryRow(ctx, query, complaintID), &feedback)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}

	return &feedback, nil
}

// ListByDepartment retrieves all feedback rows for a department, newest first
func (r *FeedbackRepository) ListByDepartment(ctx context.Context, departmentID int64) ([]models.Feedback, error) {
	query := `
		SELECT ` + feedbackSelectColumns + `
		FROM feedback f
		JOIN users u ON f.user_id = u.id
		JOIN complaints c ON f.complaint_id = c.id
		LEFT JOIN departments d ON f.department_id = d.id
		WHERE f.department_id = $1
		ORDER BY f.created_at DESC
	`

	return r.queryFeedback(ctx, query, departmentID)
}

// ListAll retrieves every feedback row, newest first
func (r *FeedbackRepository) ListAll(ctx context.Context) ([]models.Feedback, error) {
	query := `
		SELECT ` + feedbackSelectColumns + `
		FROM feedback f
		JOIN users u ON f.user_id = u.id
		JOIN complaints c ON f.complaint_id = c.id
		LEFT JOIN departments d ON f.department_id = d.id
		ORDER BY f.created_at DESC
	`

	return r.queryFeedback(ctx, query)
}

func (r *FeedbackRepository) queryFeedback(ctx context.Context, query string, args ...interface{}) ([]models.Feedback, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing feedback: %w", err)
	}
	defer rows.Close()

	var feedbacks []models.Feedback
	for rows.Next() {
		var feedback models.Feedback
		if err := scanFeedback(rows, &feedback); err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, feedback)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return feedbacks, nil
}

// DepartmentRatings aggregates average ratings per department, best first.
// Departments without any feedback do not appear.
func (r *FeedbackRepository) DepartmentRatings(ctx context.Context) ([]models.DepartmentRating, error) {
	query := `
		SELECT d.department_name,
		       ROUND(AVG(f.rating)::numeric, 1) AS avg_rating,
		       COUNT(f.id) AS total_feedback
		FROM feedback f
		JOIN departments d ON f.department_id = d.id
		GROUP BY d.department_name
		ORDER BY avg_rating DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error aggregating department ratings: %w", err)
	}
	defer rows.Close()

	var ratings []models.DepartmentRating
	for rows.Next() {
		var rating models.DepartmentRating
		if err := rows.Scan(&rating.DepartmentName, &rating.AvgRating, &rating.TotalFeedback); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ratings, nil
}
