package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	User       *UserRepository
	Department *DepartmentRepository
	Complaint  *ComplaintRepository
	Feedback   *FeedbackRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Department: NewDepartmentRepository(db),
		Complaint:  NewComplaintRepository(db),
		Feedback:   NewFeedbackRepository(db),
	}
}
