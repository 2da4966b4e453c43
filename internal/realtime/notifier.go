package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hoanvukhai/cafe-shop-management/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
)

// Channel pub/sub dùng chung giữa các instance API.
const Channel = "pos:realtime"

type OrderChangedMessage struct {
	Type        string    `json:"type"`
	OrderID     string    `json:"order_id"`
	TableNumber string    `json:"table_number"`
	At          time.Time `json:"at"`
}

// RedisNotifier đẩy tín hiệu qua Redis pub/sub thay vì bắn thẳng vào hub,
// để chạy nhiều instance API sau load balancer vẫn tới đủ mọi client.
type RedisNotifier struct {
	rdb *redis.Client
}

func NewRedisNotifier(rdb *redis.Client) *RedisNotifier {
	return &RedisNotifier{rdb: rdb}
}

func (n *RedisNotifier) OrderChanged(ctx context.Context, orderID, tableNumber string) {
	msg := OrderChangedMessage{
		Type:        "order_changed",
		OrderID:     orderID,
		TableNumber: tableNumber,
		At:          time.Now(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	if err := n.rdb.Publish(ctx, Channel, payload).Err(); err != nil {
		contextutil.GetLogger(ctx).Named("realtime.notifier").
			Warn("không publish được tín hiệu realtime: " + err.Error())
	}
}

// Bridge nghe kênh pub/sub và bơm vào hub của instance hiện tại.
func Bridge(ctx context.Context, rdb *redis.Client, hub *Hub) {
	sub := rdb.Subscribe(ctx, Channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			hub.Broadcast([]byte(msg.Payload))
		}
	}
}
