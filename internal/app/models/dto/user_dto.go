package dto

// UpdateUserRequest is the admin-only mutation of a user's role and
// department assignment
type UpdateUserRequest struct {
	Role         string `json:"role" binding:"required" example:"staff"`
	DepartmentID *int64 `json:"department_id,omitempty" example:"3"`
}

// CategoryCount is one bucket of the category breakdown
type CategoryCount struct {
	Category string `json:"category" example:"library"`
	Count    int64  `json:"count" example:"14"`
}

// StatusCount is one bucket of the status breakdown
type StatusCount struct {
	Status string `json:"status" example:"pending"`
	Count  int64  `json:"count" example:"9"`
}

// DepartmentBreakdown is the per-department complaint summary
type DepartmentBreakdown struct {
	DepartmentName string `json:"department_name" example:"Library Services"`
	Total          int64  `json:"total" example:"20"`
	Resolved       int64  `json:"resolved" example:"15"`
	Pending        int64  `json:"pending" example:"3"`
}

// DailyCount is one day of the trailing-30-day submission series
type DailyCount struct {
	Date  string `json:"date" example:"2025-04-20"`
	Count int64  `json:"count" example:"4"`
}

// ComplaintAnalytics aggregates the admin dashboard breakdowns
type ComplaintAnalytics struct {
	ByCategory []CategoryCount       `json:"byCategory"`
	ByStatus   []StatusCount         `json:"byStatus"`
	ByDept     []DepartmentBreakdown `json:"byDept"`
	Daily      []DailyCount          `json:"daily"`
}
