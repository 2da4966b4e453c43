package menu

import (
	"time"

	"gorm.io/gorm"
)

// MenuItem giữ id dạng "<category>_<số>" như coffee_001 để khớp
// với id công thức pha chế và dữ liệu bán hàng cũ.
type MenuItem struct {
	ID        string `gorm:"column:id;type:varchar(50);primaryKey"`
	Category  string `gorm:"column:category;type:varchar(30);not null;index"`
	Name      string `gorm:"column:name;type:varchar(120);not null"`
	Price     int64  `gorm:"column:price;type:bigint;not null;default:0"`
	Available bool   `gorm:"column:available;not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

// Categories theo thứ tự hiển thị trên quầy
var Categories = []string{
	"coffee",
	"milk_tea",
	"matcha",
	"yogurt",
	"blended",
	"fruit_tea",
	"smoothie",
	"hot_drinks",
	"ice_cream",
	"juice",
	"snacks",
	"special_drinks",
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
