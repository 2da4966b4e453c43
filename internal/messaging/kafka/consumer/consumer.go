package consumer

import (
	"context"
	"encoding/json"

	"github.com/hoanvukhai/cafe-shop-management/internal/analytics"
	"github.com/hoanvukhai/cafe-shop-management/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeOrderLifecycle đọc sự kiện vòng đời order và bồi bảng thống kê.
// Chỉ order_completed sinh doanh thu; các event khác commit và bỏ qua.
func ConsumeOrderLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	analyticsService analytics.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.order_lifecycle")
	log.Info("order lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("order lifecycle consumer stopped")
				return
			}
			log.Error("fetch order lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.OrderLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode order lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.EventType != events.OrderCompletedEventType {
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := analyticsService.ApplyOrderCompleted(ctx, event); err != nil {
			log.Error("apply order_completed to analytics failed",
				zap.String("order_id", event.OrderID),
				zap.Error(err),
			)
			// không commit để thử lại ở lần fetch sau
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit order lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("order revenue recorded",
			zap.String("order_id", event.OrderID),
			zap.String("sequence_number", event.SequenceNumber),
			zap.Int64("total", event.Total),
		)
	}
}
