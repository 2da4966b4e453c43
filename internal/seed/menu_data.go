package seed

import (
	"github.com/hoanvukhai/cafe-shop-management/internal/menu"

	"gorm.io/gorm"
)

func seedMenuItems(db *gorm.DB) error {
	items := menuItems()
	return insertIgnoreDuplicates(db, &items)
}

// menuItems là thực đơn hiện hành của quán, giá VND.
func menuItems() []menu.MenuItem {
	type row struct {
		id    string
		name  string
		price int64
	}
	rows := map[string][]row{
		"coffee": {
			{"coffee_001", "Đen phin", 25000},
			{"coffee_002", "Nâu phin", 25000},
			{"coffee_003", "Bạc xỉu", 30000},
			{"coffee_004", "Cà phê kem muối", 30000},
			{"coffee_005", "Cà phê kem trứng", 30000},
			{"coffee_006", "Đen máy", 30000},
			{"coffee_007", "Espresso", 30000},
			{"coffee_008", "Americano", 30000},
			{"coffee_009", "Nâu máy", 35000},
			{"coffee_010", "Café Mocha", 35000},
			{"coffee_011", "Café Latte", 40000},
			{"coffee_012", "Café Cappuccino", 40000},
			{"coffee_013", "Café Kem", 40000},
		},
		"milk_tea": {
			{"milk_tea_001", "Trà sữa Thái xanh", 30000},
			{"milk_tea_002", "Trà ôlong lài sữa", 30000},
			{"milk_tea_003", "Sữa tươi TC đường đen", 30000},
			{"milk_tea_004", "Trà sữa TC đường đen", 30000},
		},
		"matcha": {
			{"matcha_001", "Trà sữa matcha", 30000},
			{"matcha_002", "Matcha kem muối", 30000},
			{"matcha_003", "Matcha latte", 30000},
			{"matcha_004", "Matcha việt quất", 30000},
			{"matcha_005", "Matcha cốt dừa", 35000},
		},
		"yogurt": {
			{"yogurt_001", "Sữa chua lắc đá", 30000},
			{"yogurt_002", "Sữa chua việt quất", 35000},
			{"yogurt_003", "Sữa chua đào", 35000},
			{"yogurt_004", "Sữa chua cà phê", 35000},
			{"yogurt_005", "Sữa chua trái cây nhiệt đới", 35000},
		},
		"blended": {
			{"blended_001", "Oreo đá xay", 40000},
			{"blended_002", "Café đá xay", 45000},
			{"blended_003", "Vải đá xay", 45000},
			{"blended_004", "Matcha đá xay", 40000},
			{"blended_005", "Café cốt dừa", 40000},
			{"blended_006", "Milo dầm", 35000},
			{"blended_007", "Chanh tuyết", 35000},
		},
		"fruit_tea": {
			{"fruit_tea_001", "Trà chanh nha đam", 20000},
			{"fruit_tea_002", "Trà tắc nha đam", 20000},
			{"fruit_tea_003", "Trà trái cây nhiệt đới", 30000},
			{"fruit_tea_004", "Trà vải chanh dây", 35000},
			{"fruit_tea_005", "Trà đào cam sả", 35000},
			{"fruit_tea_006", "Trà xoài chanh leo", 35000},
			{"fruit_tea_007", "Hồng trà cam xí muội", 35000},
			{"fruit_tea_008", "Trà vải", 35000},
			{"fruit_tea_009", "Trà nhãn", 35000},
		},
		"smoothie": {
			{"smoothie_001", "Sinh tố dâu tây", 40000},
			{"smoothie_002", "Sinh tố xoài", 40000},
			{"smoothie_003", "Sinh tố bơ", 40000},
			{"smoothie_004", "Sinh tố bơ dừa", 45000},
			{"smoothie_005", "Sinh tố bơ Sầu", 45000},
		},
		"hot_drinks": {
			{"hot_drinks_001", "Trà Thái Nguyên", 20000},
			{"hot_drinks_002", "Trà gừng táo đỏ", 20000},
			{"hot_drinks_003", "Trà hương cúc long nhãn", 20000},
			{"hot_drinks_004", "Trà hồng đào táo nhân lòng", 20000},
			{"hot_drinks_005", "Ca cao nóng", 30000},
		},
		"ice_cream": {
			{"ice_cream_001", "Kem 2 viên", 25000},
			{"ice_cream_002", "Kem 3 viên", 35000},
		},
		"juice": {
			{"juice_001", "Nước ép dứa", 35000},
			{"juice_002", "Nước ép chanh dây", 30000},
			{"juice_003", "Nước ép dưa hấu", 30000},
			{"juice_004", "Nước ép ổi", 30000},
			{"juice_005", "Nước ép táo", 35000},
			{"juice_006", "Nước ép cam", 35000},
			{"juice_007", "Trái dừa", 30000},
			{"juice_008", "Đĩa hoa quả", 50000},
			{"juice_009", "Nước chanh", 20000},
		},
		"snacks": {
			{"snacks_001", "Hướng dương", 10000},
			{"snacks_002", "Bỏng ngô", 25000},
			{"snacks_003", "Khô bò", 25000},
			{"snacks_004", "Khô gà", 25000},
			{"snacks_005", "Hướng dương vị dừa", 10000},
			{"snacks_006", "Trâu gác bếp", 30000},
			{"snacks_007", "Ngô cay", 15000},
		},
		"special_drinks": {
			{"special_drinks_001", "TRÀ TRÁI CÂY NHIỆT ĐỚI", 30000},
			{"special_drinks_002", "DỪA CỐT CÀ PHÊ", 40000},
			{"special_drinks_003", "CHANH TUYẾT", 35000},
			{"special_drinks_004", "CÀ PHÊ KEM Ý (affogato)", 40000},
			{"special_drinks_005", "Không rõ", 0},
		},
	}

	var items []menu.MenuItem
	for _, category := range menu.Categories {
		for _, r := range rows[category] {
			items = append(items, menu.MenuItem{
				ID:        r.id,
				Category:  category,
				Name:      r.name,
				Price:     r.price,
				Available: true,
			})
		}
	}
	return items
}
