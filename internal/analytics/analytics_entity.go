package analytics

import "time"

// Bảng tổng hợp bán hàng, được consumer Kafka bồi từ sự kiện
// order_completed. Date lưu "2006-01-02" theo giờ địa phương.

type DailySale struct {
	Date      string `gorm:"column:date;type:varchar(10);primaryKey"`
	Orders    int64  `gorm:"column:orders;not null;default:0"`
	Revenue   int64  `gorm:"column:revenue;type:bigint;not null;default:0"`
	ItemsSold int64  `gorm:"column:items_sold;not null;default:0"`
	UpdatedAt time.Time
}

func (DailySale) TableName() string {
	return "daily_sales"
}

type DishSale struct {
	Date     string `gorm:"column:date;type:varchar(10);primaryKey"`
	DishID   string `gorm:"column:dish_id;type:varchar(50);primaryKey"`
	DishName string `gorm:"column:dish_name;type:varchar(120);not null"`
	Quantity int64  `gorm:"column:quantity;not null;default:0"`
	Revenue  int64  `gorm:"column:revenue;type:bigint;not null;default:0"`
	UpdatedAt time.Time
}

func (DishSale) TableName() string {
	return "dish_sales"
}

type HourlySale struct {
	Date    string `gorm:"column:date;type:varchar(10);primaryKey"`
	Hour    int    `gorm:"column:hour;primaryKey"`
	Orders  int64  `gorm:"column:orders;not null;default:0"`
	Revenue int64  `gorm:"column:revenue;type:bigint;not null;default:0"`
	UpdatedAt time.Time
}

func (HourlySale) TableName() string {
	return "hourly_sales"
}

// ProcessedEvent đánh dấu sự kiện đã bồi vào thống kê. Consumer commit
// offset sau khi ghi nên message có thể được đọc lại, bảng này chặn
// cộng trùng khi replay.
type ProcessedEvent struct {
	EventKey    string `gorm:"column:event_key;type:varchar(80);primaryKey"`
	ProcessedAt time.Time
}

func (ProcessedEvent) TableName() string {
	return "analytics_processed_events"
}
