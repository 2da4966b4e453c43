package recipe

import (
	"time"

	"gorm.io/datatypes"
)

// Recipe là công thức pha chế gắn 1-1 với món trên menu.
// Steps và ServingTools là mảng chuỗi, lưu JSONB.
type Recipe struct {
	MenuItemID   string         `gorm:"column:menu_item_id;type:varchar(50);primaryKey"`
	Name         string         `gorm:"column:name;type:varchar(120);not null"`
	Steps        datatypes.JSON `gorm:"column:steps;type:jsonb;not null"`
	ServingTools datatypes.JSON `gorm:"column:serving_tools;type:jsonb"`
	Notes        string         `gorm:"column:notes;type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Recipe) TableName() string {
	return "recipes"
}

// PrepInstruction là công thức sơ chế nguyên liệu nền
// (nước đường, trà ủ sẵn, cà phê phin lớn...), tra theo key.
type PrepInstruction struct {
	Key         string         `gorm:"column:key;type:varchar(60);primaryKey"`
	Name        string         `gorm:"column:name;type:varchar(120);not null"`
	Ingredients datatypes.JSON `gorm:"column:ingredients;type:jsonb;not null"`
	Equipment   datatypes.JSON `gorm:"column:equipment;type:jsonb"`
	Steps       datatypes.JSON `gorm:"column:steps;type:jsonb;not null"`
	Yield       string         `gorm:"column:yield;type:varchar(200)"`
	Notes       string         `gorm:"column:notes;type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PrepInstruction) TableName() string {
	return "prep_instructions"
}
