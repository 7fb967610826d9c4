package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mrucampus/helpdesk/internal/app/models"
	"github.com/mrucampus/helpdesk/internal/pkg/apperrors"
	"github.com/mrucampus/helpdesk/internal/pkg/helpers"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// CreateUser inserts a new user and returns its id
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	query := `
		INSERT INTO users (name, email, password, role, uid, phone, department_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.Password,
		user.Role,
		helpers.GetNullString(user.UID),
		helpers.GetNullString(user.Phone),
		helpers.GetNullInt64(user.DepartmentID),
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return user.ID, nil
}

// EmailExists checks whether a user with the given email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// UIDExists checks whether a user with the given university id already exists
func (r *UserRepository) UIDExists(ctx context.Context, uid string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE uid = $1)`, uid).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking uid existence: %w", err)
	}
	return exists, nil
}

// GetByEmail retrieves a user by email including the password hash, joined
// with the department name. Used by the login path.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.password, u.role, u.uid, u.phone,
		       u.department_id, u.created_at, d.department_name
		FROM users u
		LEFT JOIN departments d ON u.department_id = d.id
		WHERE u.email = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.UID,
		&user.Phone,
		&user.DepartmentID,
		&user.CreatedAt,
		&user.DepartmentName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return &user, nil
}

// GetByID retrieves a user by id joined with the department name. The
// password hash is not selected.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.role, u.uid, u.phone,
		       u.department_id, u.created_at, d.department_name
		FROM users u
		LEFT JOIN departments d ON u.department_id = d.id
		WHERE u.id = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.UID,
		&user.Phone,
		&user.DepartmentID,
		&user.CreatedAt,
		&user.DepartmentName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// GetNameEmail returns just the name and email of a user, for notifications
func (r *UserRepository) GetNameEmail(ctx context.Context, id int64) (name, email string, err error) {
	err = r.db.QueryRow(ctx,
		`SELECT name, email FROM users WHERE id = $1`, id).Scan(&name, &email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", apperrors.ErrUserNotFound
		}
		return "", "", fmt.Errorf("error retrieving user contact: %w", err)
	}
	return name, email, nil
}

// UpdateProfile mutates only the user's own name and phone
func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, name string, phone *string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE users SET name = $1, phone = $2 WHERE id = $3`,
		name, helpers.GetNullString(phone), id)
	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// List retrieves all users joined with department name, newest first,
// optionally filtered by a substring match on name or email
func (r *UserRepository) List(ctx context.Context, search string) ([]models.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.role, u.uid, u.phone,
		       u.department_id, u.created_at, d.department_name
		FROM users u
		LEFT JOIN departments d ON u.department_id = d.id
	`
	var args []interface{}
	if search != "" {
		query += ` WHERE u.name ILIKE $1 OR u.email ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY u.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Role,
			&user.UID,
			&user.Phone,
			&user.DepartmentID,
			&user.CreatedAt,
			&user.DepartmentName,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// UpdateRoleAndDepartment is the admin-only mutation of role and department
func (r *UserRepository) UpdateRoleAndDepartment(ctx context.Context, id int64, role string, departmentID *int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE users SET role = $1, department_id = $2 WHERE id = $3`,
		role, helpers.GetNullInt64(departmentID), id)
	if err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Delete hard-deletes a user. Owned complaints cascade at the database.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
