package staff

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// Staff là nhân sự của quán. UserID giữ dạng "user1", "user2"...
// để khớp dữ liệu chấm công cũ.
type Staff struct {
	UserID        string `gorm:"column:user_id;type:varchar(30);primaryKey"`
	Name          string `gorm:"column:name;type:varchar(100);not null"`
	Role          string `gorm:"column:role;type:varchar(20);not null;default:employee"`
	SalaryPerHour int64  `gorm:"column:salary_per_hour;type:bigint;not null;default:0"`
	Active        bool   `gorm:"column:active;not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Staff) TableName() string {
	return "staff"
}
