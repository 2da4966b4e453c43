package app

import (
	"context"
	"database/sql"

	"github.com/hoanvukhai/cafe-shop-management/internal/analytics"
	"github.com/hoanvukhai/cafe-shop-management/internal/auth"
	"github.com/hoanvukhai/cafe-shop-management/internal/menu"
	"github.com/hoanvukhai/cafe-shop-management/internal/messaging/kafka"
	"github.com/hoanvukhai/cafe-shop-management/internal/order"
	"github.com/hoanvukhai/cafe-shop-management/internal/rbac"
	"github.com/hoanvukhai/cafe-shop-management/internal/rbac/infra"
	"github.com/hoanvukhai/cafe-shop-management/internal/realtime"
	"github.com/hoanvukhai/cafe-shop-management/internal/recipe"
	"github.com/hoanvukhai/cafe-shop-management/internal/shared/counter"
	"github.com/hoanvukhai/cafe-shop-management/internal/staff"
	"github.com/hoanvukhai/cafe-shop-management/internal/task"
	"github.com/hoanvukhai/cafe-shop-management/internal/timesheet"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	hub *realtime.Hub,
	notifier order.Notifier,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	analyticsRepo := analytics.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(db)
	menuRepo := menu.NewRepository(gormDB)
	orderRepo := order.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	recipeRepo := recipe.NewRepository(gormDB)
	staffRepo := staff.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)
	timesheetRepo := timesheet.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)
	// Policy nạp một lần lúc khởi động; sửa role_permissions thì
	// restart API (quán một cửa hàng, policy gần như bất biến).
	if err := rbacService.LoadPolicy(context.Background()); err != nil {
		return err
	}

	// --- Services ---
	analyticsService := analytics.NewService(analyticsRepo)
	authService := auth.NewService(authRepo, staffRepo)
	menuService := menu.NewService(menuRepo, rdb)
	orderService := order.NewService(db, orderRepo, counterRepo, menuRepo, outboxRepo, notifier)
	recipeService := recipe.NewService(recipeRepo)
	staffService := staff.NewService(staffRepo)
	taskService := task.NewService(taskRepo)
	timesheetService := timesheet.NewService(db, timesheetRepo, staffRepo, menuRepo)

	// --- Handlers ---
	analyticsHandler := analytics.NewHandler(analyticsService)
	authHandler := auth.NewHandler(authService)
	menuHandler := menu.NewHandler(menuService)
	orderHandler := order.NewHandlerWithRedis(orderService, rdb)
	recipeHandler := recipe.NewHandler(recipeService)
	staffHandler := staff.NewHandler(staffService)
	taskHandler := task.NewHandler(taskService)
	timesheetHandler := timesheet.NewHandler(timesheetService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		analytics.RegisterRoutes(api, analyticsHandler, rbacService)
		menu.RegisterRoutes(api, menuHandler, rbacService)
		order.RegisterRoutes(api, orderHandler, rbacService, rdb)
		recipe.RegisterRoutes(api, recipeHandler, rbacService)
		staff.RegisterRoutes(api, staffHandler, rbacService)
		task.RegisterRoutes(api, taskHandler, rbacService)
		timesheet.RegisterRoutes(api, timesheetHandler, rbacService)
	}

	router.GET("/ws", realtime.ServeWS(hub, zap.L()))

	return nil
}
