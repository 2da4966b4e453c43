package timesheet

import "time"

type AdjustmentInput struct {
	Kind       string  `json:"kind" binding:"required,oneof=BONUS DEDUCTION"`
	MenuItemID *string `json:"menu_item_id"`
	Reason     string  `json:"reason"`
	// Amount bỏ trống với phạt theo món: mặc định 50% giá món
	Amount int64 `json:"amount" binding:"min=0"`
}

type AdminCreateRequest struct {
	UserID   string            `json:"user_id" binding:"required"`
	CheckIn  time.Time         `json:"check_in" binding:"required"`
	CheckOut *time.Time        `json:"check_out"`
	Note     string            `json:"note"`
	Adjustments []AdjustmentInput `json:"adjustments" binding:"omitempty,dive"`
}

type AdminUpdateRequest struct {
	CheckIn     *time.Time         `json:"check_in"`
	CheckOut    *time.Time         `json:"check_out"`
	Note        *string            `json:"note"`
	Adjustments *[]AdjustmentInput `json:"adjustments"`
}

type AdjustmentResponse struct {
	Kind       string  `json:"kind"`
	MenuItemID *string `json:"menu_item_id,omitempty"`
	Reason     string  `json:"reason,omitempty"`
	Amount     int64   `json:"amount"`
}

type RecordResponse struct {
	ID         string `json:"id"`
	ShiftLabel string `json:"shift_label"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name,omitempty"`

	CheckIn  time.Time  `json:"check_in"`
	CheckOut *time.Time `json:"check_out,omitempty"`
	// Giờ công và lương cơ bản chỉ có sau khi check-out
	DurationHours *float64 `json:"duration_hours,omitempty"`
	SalaryPerHour int64    `json:"salary_per_hour"`
	BaseSalary    *int64   `json:"base_salary,omitempty"`
	Salary        int64    `json:"salary"`
	Status        string               `json:"status"`
	Note          string               `json:"note,omitempty"`
	ConfirmedBy   *string              `json:"confirmed_by,omitempty"`
	ConfirmedAt   *time.Time           `json:"confirmed_at,omitempty"`
	Adjustments   []AdjustmentResponse `json:"adjustments,omitempty"`
}

// ListQuery: period = day|week|month|year|range.
// day/week nhận date=YYYY-MM-DD, month nhận month=YYYY-MM,
// year nhận year=YYYY, range nhận from/to=YYYY-MM-DD.
type ListQuery struct {
	UserID string `form:"user_id"`
	Period string `form:"period" binding:"omitempty,oneof=day week month year range"`
	Date   string `form:"date"`
	Month  string `form:"month"`
	Year   string `form:"year"`
	From   string `form:"from"`
	To     string `form:"to"`
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
}

type SummaryEntry struct {
	UserID      string  `json:"user_id"`
	UserName    string  `json:"user_name,omitempty"`
	Shifts      int     `json:"shifts"`
	TotalHours  float64 `json:"total_hours"`
	TotalSalary int64   `json:"total_salary"`
}

type SummaryResponse struct {
	From    time.Time      `json:"from"`
	To      time.Time      `json:"to"`
	Entries []SummaryEntry `json:"entries"`
	Total   int64          `json:"total"`
}
