package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mrucampus/helpdesk/internal/app/models"
	"github.com/mrucampus/helpdesk/internal/app/repositories"
	"github.com/mrucampus/helpdesk/internal/pkg/auth"
	"github.com/mrucampus/helpdesk/internal/pkg/dberrors"
	"github.com/rs/zerolog"
)

// defaultDepartments covers every complaint category so routing always finds
// a department on a fresh install
var defaultDepartments = []models.Department{
	{Name: "Library Services", CategoryKey: "library", Email: "library@mru.edu", Description: "Library facilities and lending"},
	{Name: "Transport Office", CategoryKey: "transport", Email: "transport@mru.edu", Description: "Campus buses and shuttles"},
	{Name: "Hostel Administration", CategoryKey: "hostel", Email: "hostel@mru.edu", Description: "Hostel rooms and amenities"},
	{Name: "Auditorium Management", CategoryKey: "auditorium", Email: "auditorium@mru.edu", Description: "Auditorium booking and upkeep"},
	{Name: "Canteen Services", CategoryKey: "canteen", Email: "canteen@mru.edu", Description: "Food courts and canteens"},
	{Name: "IT Support", CategoryKey: "it_support", Email: "itsupport@mru.edu", Description: "Network, accounts and lab systems"},
	{Name: "Examination Cell", CategoryKey: "examination", Email: "examcell@mru.edu", Description: "Exam schedules and results"},
	{Name: "Maintenance", CategoryKey: "maintenance", Email: "maintenance@mru.edu", Description: "Electrical, plumbing and civil works"},
	{Name: "General Administration", CategoryKey: "others", Email: "admin-office@mru.edu", Description: "Everything without a dedicated department"},
}

const (
	defaultAdminEmail    = "admin@mru.edu"
	defaultAdminPassword = "Admin123!"
)

// CreateDefaultData seeds one department per complaint category and a
// bootstrap admin account. Existing rows are left untouched, so the seed is
// safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	departmentRepo := repositories.NewDepartmentRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default departments...")
	var finalErr error

	for i := range defaultDepartments {
		department := defaultDepartments[i]
		if err := departmentRepo.Create(ctx, &department); err != nil {
			if dberrors.IsUniqueViolation(err) {
				continue
			}
			lgr.Error().Err(err).Str("category", department.CategoryKey).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return errors.Join(finalErr, err)
	}
	if exists {
		return finalErr
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Creating default admin user...")

	hashed, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return errors.Join(finalErr, err)
	}

	admin := &models.User{
		Name:     "Helpdesk Admin",
		Email:    defaultAdminEmail,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if _, err := userRepo.CreateUser(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin user")
		return errors.Join(finalErr, err)
	}

	lgr.Warn().Str("email", defaultAdminEmail).Msg("Default admin created with a well-known password, change it after first login")
	return finalErr
}
