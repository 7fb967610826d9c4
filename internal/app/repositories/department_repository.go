package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mrucampus/helpdesk/internal/app/models"
	"github.com/mrucampus/helpdesk/internal/pkg/apperrors"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

// Create creates a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (department_name, category_key, description, email, head_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_active, created_at
	`

	err := r.db.QueryRow(ctx, query,
		department.Name,
		department.CategoryKey,
		department.Description,
		department.Email,
		department.HeadName,
	).Scan(&department.ID, &department.IsActive, &department.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT id, department_name, category_key, description, email, head_name, is_active, created_at
		FROM departments
		WHERE id = $1
	`

	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&department.ID,
		&department.Name,
		&department.CategoryKey,
		&department.Description,
		&department.Email,
		&department.HeadName,
		&department.IsActive,
		&department.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// GetByCategoryKey resolves the department responsible for a category key.
// Returns nil when no department claims the key; the schema allows at most
// one in practice, but a misconfigured duplicate yields the lowest id.
func (r *DepartmentRepository) GetByCategoryKey(ctx context.Context, categoryKey string) (*models.Department, error) {
	query := `
		SELECT id, department_name, category_key, description, email, head_name, is_active, created_at
		FROM departments
		WHERE category_key = $1
		ORDER BY id
		LIMIT 1
	`

	var department models.Department
	err := r.db.QueryRow(ctx, query, categoryKey).Scan(
		&department.ID,
		&department.Name,
		&department.CategoryKey,
		&department.Description,
		&department.Email,
		&department.HeadName,
		&department.IsActive,
		&department.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving department by category key: %w", err)
	}

	return &department, nil
}

// ListWithCounts retrieves all departments with their complaint counters,
// ordered by name
func (r *DepartmentRepository) ListWithCounts(ctx context.Context) ([]models.Department, error) {
	query := `
		SELECT d.id, d.department_name, d.category_key, d.description, d.email,
		       d.head_name, d.is_active, d.created_at,
		       COUNT(c.id) AS total_complaints,
		       COALESCE(SUM(CASE WHEN c.status = 'pending' THEN 1 ELSE 0 END), 0) AS pending,
		       COALESCE(SUM(CASE WHEN c.status = 'resolved' THEN 1 ELSE 0 END), 0) AS resolved
		FROM departments d
		LEFT JOIN complaints c ON d.id = c.department_id
		GROUP BY d.id
		ORDER BY d.department_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	var departments []models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(
			&department.ID,
			&department.Name,
			&department.CategoryKey,
			&department.Description,
			&department.Email,
			&department.HeadName,
			&department.IsActive,
			&department.CreatedAt,
			&department.TotalComplaints,
			&department.Pending,
			&department.Resolved,
		); err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// Update edits a department. The category key is immutable after creation.
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	query := `
		UPDATE departments
		SET department_name = $1, description = $2, email = $3, head_name = $4, is_active = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		department.Name,
		department.Description,
		department.Email,
		department.HeadName,
		department.IsActive,
		department.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// Delete deletes a department by ID. Complaints referencing it have their
// department nulled out by the foreign key.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}
