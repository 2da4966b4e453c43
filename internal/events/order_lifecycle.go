package events

import "time"

const OrderLifecycleTopic = "pos.order.lifecycle.v1"

const (
	OrderCreatedEventType   = "order_created"
	OrderCompletedEventType = "order_completed"
	OrderCanceledEventType  = "order_canceled"
)

// OrderLineSnapshot là ảnh chụp một dòng món tại thời điểm phát event,
// consumer phía analytics không cần đọc lại bảng orders.
type OrderLineSnapshot struct {
	DishID   string `json:"dish_id"`
	DishName string `json:"dish_name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type OrderLifecycleEvent struct {
	EventType      string              `json:"event_type"`
	RequestID      string              `json:"request_id,omitempty"`
	OrderID        string              `json:"order_id"`
	SequenceNumber string              `json:"sequence_number"`
	TableNumber    string              `json:"table_number"`
	Total          int64               `json:"total"`
	Items          []OrderLineSnapshot `json:"items,omitempty"`
	OccurredAt     time.Time           `json:"occurred_at"`
}
