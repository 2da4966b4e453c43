package timesheet

import (
	"math"
	"time"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"

	AdjustmentBonus     = "BONUS"
	AdjustmentDeduction = "DEDUCTION"

	// ShiftLabelLayout: nhãn ca hiển thị theo giờ check-in,
	// ví dụ "20250101_073005". Hai người check-in cùng giây vẫn là
	// hai ca riêng nên khóa chính dùng uuid, nhãn chỉ để hiển thị.
	ShiftLabelLayout = "20060102_150405"
)

type Record struct {
	ID            string     `gorm:"column:id;type:varchar(36);primaryKey"`
	UserID        string     `gorm:"column:user_id;type:varchar(30);not null;index"`
	CheckIn       time.Time  `gorm:"column:check_in;not null"`
	CheckOut      *time.Time `gorm:"column:check_out"`
	SalaryPerHour int64      `gorm:"column:salary_per_hour;type:bigint;not null"`
	BaseSalary    int64      `gorm:"column:base_salary;type:bigint;not null;default:0"`
	Salary        int64      `gorm:"column:salary;type:bigint;not null;default:0"`
	Status        string     `gorm:"column:status;type:varchar(15);not null;default:pending;index"`
	Note          string     `gorm:"column:note;type:text"`
	ConfirmedBy   *string    `gorm:"column:confirmed_by;type:varchar(30)"`
	ConfirmedAt   *time.Time `gorm:"column:confirmed_at"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Adjustments []PayAdjustment `gorm:"foreignKey:RecordID;references:ID"`
}

func (Record) TableName() string {
	return "timesheet_records"
}

// PayAdjustment là thưởng/phạt gắn vào một ca làm. Phạt có thể trỏ tới
// một món trên menu (nhân viên làm hỏng đồ uống).
type PayAdjustment struct {
	ID         uint    `gorm:"column:id;primaryKey;autoIncrement"`
	RecordID   string  `gorm:"column:record_id;type:varchar(36);not null;index"`
	Kind       string  `gorm:"column:kind;type:varchar(10);not null"`
	MenuItemID *string `gorm:"column:menu_item_id;type:varchar(50)"`
	Reason     string  `gorm:"column:reason;type:varchar(255)"`
	Amount     int64   `gorm:"column:amount;type:bigint;not null"`
	CreatedAt  time.Time
}

func (PayAdjustment) TableName() string {
	return "pay_adjustments"
}

// BaseSalaryFor làm tròn lương cơ bản theo số giờ thực làm.
func BaseSalaryFor(checkIn, checkOut time.Time, ratePerHour int64) int64 {
	hours := checkOut.Sub(checkIn).Hours()
	return int64(math.Round(hours * float64(ratePerHour)))
}

// Recompute tính lại lương sau thưởng/phạt. Lương âm được phép,
// sẽ trừ tiếp vào kỳ sau.
func (r *Record) Recompute() {
	if r.CheckOut != nil {
		r.BaseSalary = BaseSalaryFor(r.CheckIn, *r.CheckOut, r.SalaryPerHour)
	}
	salary := r.BaseSalary
	for _, adj := range r.Adjustments {
		switch adj.Kind {
		case AdjustmentBonus:
			salary += adj.Amount
		case AdjustmentDeduction:
			salary -= adj.Amount
		}
	}
	r.Salary = salary
}
