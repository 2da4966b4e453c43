package main

import (
	"os"

	"github.com/hoanvukhai/cafe-shop-management/internal/analytics"
	"github.com/hoanvukhai/cafe-shop-management/internal/auth"
	"github.com/hoanvukhai/cafe-shop-management/internal/menu"
	"github.com/hoanvukhai/cafe-shop-management/internal/order"
	"github.com/hoanvukhai/cafe-shop-management/internal/rbac"
	"github.com/hoanvukhai/cafe-shop-management/internal/recipe"
	"github.com/hoanvukhai/cafe-shop-management/internal/seed"
	"github.com/hoanvukhai/cafe-shop-management/internal/shared/connection"
	"github.com/hoanvukhai/cafe-shop-management/internal/staff"
	"github.com/hoanvukhai/cafe-shop-management/internal/task"
	"github.com/hoanvukhai/cafe-shop-management/internal/timesheet"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// order_counters và outbox_events được truy vấn bằng SQL thô nên
// giữ DDL tường minh thay vì AutoMigrate.
const rawDDL = `
CREATE TABLE IF NOT EXISTS order_counters (
	order_date varchar(8) PRIMARY KEY,
	last_value bigint NOT NULL DEFAULT 0,
	updated_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS outbox_events (
	id uuid PRIMARY KEY,
	request_id varchar(64),
	aggregate_type varchar(50) NOT NULL,
	aggregate_id varchar(64) NOT NULL,
	event_type varchar(50) NOT NULL,
	topic varchar(100) NOT NULL,
	payload jsonb NOT NULL,
	status varchar(15) NOT NULL DEFAULT 'pending',
	retry_count int NOT NULL DEFAULT 0,
	next_retry_at timestamptz,
	processed_at timestamptz,
	error_message text,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_outbox_events_status_created
	ON outbox_events (status, created_at);
`

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

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
		logger.Fatal("connect database failed", zap.Error(err))
	}

	if err := migrate(gormDB); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}
	logger.Info("schema migrated")

	if os.Getenv("SKIP_SEED") == "" {
		if err := seed.Run(gormDB, logger); err != nil {
			logger.Fatal("seed failed", zap.Error(err))
		}
		logger.Info("seed data loaded")
	}
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&auth.User{},
		&rbac.RolePermission{},
		&staff.Staff{},
		&menu.MenuItem{},
		&recipe.Recipe{},
		&recipe.PrepInstruction{},
		&order.Order{},
		&order.OrderItem{},
		&timesheet.Record{},
		&timesheet.PayAdjustment{},
		&task.Task{},
		&analytics.DailySale{},
		&analytics.DishSale{},
		&analytics.HourlySale{},
		&analytics.ProcessedEvent{},
	); err != nil {
		return err
	}
	return db.Exec(rawDDL).Error
}
