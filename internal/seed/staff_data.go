package seed

import (
	"github.com/hoanvukhai/cafe-shop-management/internal/staff"

	"gorm.io/gorm"
)

func seedStaff(db *gorm.DB) error {
	rows := []staff.Staff{
		{UserID: "user1", Name: "Bảo", Role: staff.RoleEmployee, SalaryPerHour: 25000, Active: true},
		{UserID: "user2", Name: "Thắng", Role: staff.RoleEmployee, SalaryPerHour: 20000, Active: true},
		{UserID: "user3", Name: "Đạt", Role: staff.RoleEmployee, SalaryPerHour: 20000, Active: true},
		{UserID: "user4", Name: "Hoàn", Role: staff.RoleEmployee, SalaryPerHour: 20000, Active: true},
		{UserID: "user5", Name: "Hoan", Role: staff.RoleEmployee, SalaryPerHour: 20000, Active: true},
		{UserID: "user6", Name: "Lành", Role: staff.RoleEmployee, SalaryPerHour: 20000, Active: true},
		{UserID: "user7", Name: "Admin", Role: staff.RoleAdmin, SalaryPerHour: 0, Active: true},
	}
	return insertIgnoreDuplicates(db, &rows)
}
