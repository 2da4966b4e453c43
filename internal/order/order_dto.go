package order

import "time"

type OrderItemInput struct {
	DishID   string `json:"dish_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Note     string `json:"note"`
}

type CreateOrderRequest struct {
	TableNumber string           `json:"table_number" binding:"required"`
	Note        string           `json:"note"`
	Items       []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

type AddItemsRequest struct {
	Items []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// SaveOrderRequest ghi đè toàn bộ nội dung order đang mở: ghi chú và
// danh sách món. Dòng trùng dish + ghi chú với dòng cũ giữ nguyên
// trạng thái pha chế, chỉ cập nhật số lượng.
type SaveOrderRequest struct {
	Note  string           `json:"note"`
	Items []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

type UpdateItemQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type UpdateItemNoteRequest struct {
	Note string `json:"note"`
}

type UpdateItemStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending prepared served"`
}

type SwapTableRequest struct {
	ToTable string `json:"to_table" binding:"required"`
}

type OrderItemResponse struct {
	ItemID   string     `json:"item_id"`
	DishID   string     `json:"dish_id"`
	DishName string     `json:"dish_name"`
	Price    int64      `json:"price"`
	Quantity int        `json:"quantity"`
	Note     string     `json:"note,omitempty"`
	Status   string     `json:"status"`
	ServedAt *time.Time `json:"served_at,omitempty"`
}

type OrderResponse struct {
	OrderID        string              `json:"order_id"`
	SequenceNumber string              `json:"sequence_number"`
	TableNumber    string              `json:"table_number"`
	Status         string              `json:"status"`
	Note           string              `json:"note,omitempty"`
	Total          int64               `json:"total"`
	Items          []OrderItemResponse `json:"items"`
	CreatedAt      time.Time           `json:"created_at"`
	ModifiedAt     time.Time           `json:"modified_at"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty"`
	PaidAt         *time.Time          `json:"paid_at,omitempty"`
	CanceledAt     *time.Time          `json:"canceled_at,omitempty"`
}

// TableBoardEntry cho màn hình sơ đồ bàn
type TableBoardEntry struct {
	TableNumber  string `json:"table_number"`
	Occupied     bool   `json:"occupied"`
	OrderID      string `json:"order_id,omitempty"`
	Total        int64  `json:"total,omitempty"`
	PendingItems int    `json:"pending_items,omitempty"`
	ServedItems  int    `json:"served_items,omitempty"`
	ItemCount    int    `json:"item_count,omitempty"`
}

// QueueResponse cho màn hình pha chế: hàng đợi món theo thứ tự gọi,
// kèm order đang mở chia hai nhóm còn chờ / đã pha xong hết.
type QueueResponse struct {
	Items         []QueueEntry    `json:"items"`
	WaitingOrders []OrderResponse `json:"waiting_orders"`
	ReadyOrders   []OrderResponse `json:"ready_orders"`
}

// QueueEntry cho màn hình pha chế: món chờ pha trên mọi order đang mở
type QueueEntry struct {
	ItemID      string    `json:"item_id"`
	OrderID     string    `json:"order_id"`
	TableNumber string    `json:"table_number"`
	DishID      string    `json:"dish_id"`
	DishName    string    `json:"dish_name"`
	Quantity    int       `json:"quantity"`
	Note        string    `json:"note,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListOrdersQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending completed canceled"`
	Date   string `form:"date"`
	Page   int    `form:"page,default=1" binding:"min=1"`
	Limit  int    `form:"limit,default=20" binding:"min=1,max=100"`
}
