package app

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/hoanvukhai/cafe-shop-management/internal/middleware"
	"github.com/hoanvukhai/cafe-shop-management/internal/realtime"
	"github.com/hoanvukhai/cafe-shop-management/internal/shared/connection"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L()

	// 1. Setup Infrastructure
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
	logger.Info("database connection established")

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	// 2. Global middleware
	router.Use(cors.New(corsConfig()))
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(logger))

	// 3. Realtime hub: sơ đồ bàn và quầy pha chế nghe qua websocket,
	// tín hiệu đi qua Redis pub/sub để chạy được nhiều instance API.
	hub := realtime.NewHub(logger)
	go hub.Run(context.Background())
	go realtime.Bridge(context.Background(), redisClient, hub)
	notifier := realtime.NewRedisNotifier(redisClient)

	// 4. Register Modules & Routes
	return registerModules(router, db, gormDB, redisClient, hub, notifier)
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(origins, ",")
		cfg.AllowCredentials = true
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Client-Type", "Idempotency-Key")
	cfg.MaxAge = 12 * time.Hour
	return cfg
}
