package auth

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        string  `gorm:"column:id;type:uuid;primaryKey"`
	StaffID   *string `gorm:"column:staff_id;type:varchar(30);uniqueIndex"`
	Email     string  `gorm:"column:email;type:varchar(120);not null;uniqueIndex"`
	Name      string  `gorm:"column:name;type:varchar(100);not null"`
	Password  string  `gorm:"column:password;type:varchar(255);not null"`
	Role      string  `gorm:"column:role;type:varchar(20);not null;default:employee"`
	IsActive  bool    `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
