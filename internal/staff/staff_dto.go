package staff

type CreateStaffRequest struct {
	UserID        string `json:"user_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Role          string `json:"role" binding:"required,oneof=employee admin"`
	SalaryPerHour int64  `json:"salary_per_hour" binding:"min=0"`
}

type UpdateStaffRequest struct {
	Name          *string `json:"name"`
	Role          *string `json:"role" binding:"omitempty,oneof=employee admin"`
	SalaryPerHour *int64  `json:"salary_per_hour"`
	Active        *bool   `json:"active"`
}

type StaffResponse struct {
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	SalaryPerHour int64  `json:"salary_per_hour"`
	Active        bool   `json:"active"`
}
