package dto

// RegisterRequest holds the payload for account registration
type RegisterRequest struct {
	Name     string  `json:"name" binding:"required" example:"Aisha Verma"`
	Email    string  `json:"email" binding:"required,email" example:"aisha@mru.edu"`
	Password string  `json:"password" binding:"required" example:"s3cret123"`
	Role     string  `json:"role" example:"student"` // defaults to student when empty
	UID      *string `json:"uid,omitempty" example:"MRU2021045"`
	Phone    *string `json:"phone,omitempty" example:"9876543210"`
}

// LoginRequest holds the payload for credential login
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"aisha@mru.edu"`
	Password string `json:"password" binding:"required" example:"s3cret123"`
}

// UserProfile is the public projection of a user, joined with department name
type UserProfile struct {
	ID             int64   `json:"id" example:"7"`
	Name           string  `json:"name" example:"Aisha Verma"`
	Email          string  `json:"email" example:"aisha@mru.edu"`
	Role           string  `json:"role" example:"student"`
	UID            *string `json:"uid,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	DepartmentID   *int64  `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	CreatedAt      string  `json:"created_at,omitempty"`
}

// LoginResponse carries the signed token and the user projection
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// UpdateProfileRequest lets a user change only their own name and phone
type UpdateProfileRequest struct {
	Name  string  `json:"name" binding:"required" example:"Aisha Verma"`
	Phone *string `json:"phone,omitempty" example:"9876543210"`
}
