package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hoanvukhai/cafe-shop-management/internal/messaging/kafka"
	"github.com/hoanvukhai/cafe-shop-management/internal/messaging/kafka/producer"
	"github.com/hoanvukhai/cafe-shop-management/internal/shared/connection"
	"github.com/hoanvukhai/cafe-shop-management/internal/task"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func RunWorker() error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	taskService := task.NewService(task.NewRepository(gormDB))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	// Quét việc định kỳ quá hạn mỗi phút: checklist mở lại ngay sau
	// nửa đêm kể cả khi không ai xem. Quét chỉ đụng task quá hạn nên
	// chạy lặp không đổi kết quả.
	c := cron.New()
	if _, err := c.AddFunc("@every 1m", func() {
		reopened, err := taskService.SweepOverdue(context.Background())
		if err != nil {
			logger.Error("sweep overdue tasks failed", zap.Error(err))
			return
		}
		if reopened > 0 {
			logger.Info("overdue tasks reopened", zap.Int("count", reopened))
		}
	}); err != nil {
		return err
	}
	c.Start()
	defer c.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
