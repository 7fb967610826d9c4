package dto

// CreateDepartmentRequest holds the payload for department creation
type CreateDepartmentRequest struct {
	Name        string `json:"department_name" binding:"required" example:"Library Services"`
	CategoryKey string `json:"category_key" binding:"required" example:"library"`
	Description string `json:"description" example:"Handles library related complaints"`
	Email       string `json:"email" binding:"required,email" example:"library@mru.edu"`
	HeadName    string `json:"head_name" example:"Dr. R. Sharma"`
}

// UpdateDepartmentRequest edits a department. The category key is fixed at
// creation time and cannot be changed through this path.
type UpdateDepartmentRequest struct {
	Name        string `json:"department_name" binding:"required"`
	Description string `json:"description"`
	Email       string `json:"email" binding:"required,email"`
	HeadName    string `json:"head_name"`
	IsActive    bool   `json:"is_active"`
}
