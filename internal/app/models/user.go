package models

import (
	"time"
)

// Role defines the access level of a user account.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

// ValidRole reports whether the given string is one of the known roles.
func ValidRole(r string) bool {
	switch Role(r) {
	case RoleStudent, RoleFaculty, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name         string    `json:"name" db:"name" example:"Aisha Verma"`                     // Full name
	Email        string    `json:"email" db:"email" example:"aisha@mru.edu"`                 // Email address (unique)
	Password     string    `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	Role         Role      `json:"role" db:"role" example:"student"`                         // student, faculty, staff or admin
	UID          *string   `json:"uid,omitempty" db:"uid" example:"MRU2021045"`              // University ID (unique when present)
	Phone        *string   `json:"phone,omitempty" db:"phone" example:"9876543210"`          // Contact number (nullable)
	DepartmentID *int64    `json:"department_id,omitempty" db:"department_id" example:"3"`   // Department for staff accounts (nullable)
	CreatedAt    time.Time `json:"created_at" db:"created_at" example:"2024-01-01T10:00:00Z"`

	// DepartmentName is joined from the departments table, no db column of its own
	DepartmentName *string `json:"department_name,omitempty"`
}
