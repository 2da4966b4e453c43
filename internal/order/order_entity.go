package order

import (
	"fmt"
	"time"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"

	ItemStatusPending  = "pending"
	ItemStatusPrepared = "prepared"
	ItemStatusServed   = "served"

	TakeawayTable = "Mang về"
)

// TableNames là danh sách bàn cố định của quán: Bàn 01..Bàn 20 và mang về.
func TableNames() []string {
	names := make([]string, 0, 21)
	for i := 1; i <= 20; i++ {
		names = append(names, fmt.Sprintf("Bàn %02d", i))
	}
	names = append(names, TakeawayTable)
	return names
}

func IsValidTable(name string) bool {
	for _, t := range TableNames() {
		if t == name {
			return true
		}
	}
	return false
}

// Order: ID là uuid nội bộ, PublicID dạng "order_<8 hex>" đưa ra ngoài,
// SequenceNumber dạng "HD20250101-0001" in trên hóa đơn.
type Order struct {
	ID             string  `gorm:"column:id;type:uuid;primaryKey"`
	PublicID       string  `gorm:"column:public_id;type:varchar(20);not null;uniqueIndex"`
	SequenceNumber string  `gorm:"column:sequence_number;type:varchar(20);not null;uniqueIndex"`
	TableNumber    string  `gorm:"column:table_number;type:varchar(20);not null;index"`
	Status         string  `gorm:"column:status;type:varchar(15);not null;default:pending;index"`
	Note           string  `gorm:"column:note;type:text"`
	CreatedBy      string  `gorm:"column:created_by;type:varchar(60)"`
	CreatedAt      time.Time
	ModifiedAt     time.Time  `gorm:"column:modified_at"`
	CompletedAt    *time.Time `gorm:"column:completed_at"`
	PaidAt         *time.Time `gorm:"column:paid_at"`
	CanceledAt     *time.Time `gorm:"column:canceled_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;references:ID"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) Total() int64 {
	var total int64
	for _, it := range o.Items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}

// HasPendingItems chặn thanh toán khi còn món chưa pha xong.
func (o *Order) HasPendingItems() bool {
	for _, it := range o.Items {
		if it.Status == ItemStatusPending {
			return true
		}
	}
	return false
}

// OrderItem chụp lại tên và giá món tại thời điểm gọi,
// đổi giá menu về sau không ảnh hưởng hóa đơn cũ.
type OrderItem struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey"`
	PublicID string `gorm:"column:public_id;type:varchar(20);not null;uniqueIndex"`
	OrderID  string `gorm:"column:order_id;type:uuid;not null;index"`
	DishID   string `gorm:"column:dish_id;type:varchar(50);not null"`
	DishName string `gorm:"column:dish_name;type:varchar(120);not null"`
	Price    int64  `gorm:"column:price;type:bigint;not null"`
	Quantity int    `gorm:"column:quantity;not null"`
	Note     string `gorm:"column:note;type:text"`
	Status   string `gorm:"column:status;type:varchar(15);not null;default:pending;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	ServedAt  *time.Time `gorm:"column:served_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
