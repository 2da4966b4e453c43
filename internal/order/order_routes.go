package order

import (
	"time"

	"github.com/hoanvukhai/cafe-shop-management/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func timeNowDate() string {
	return time.Now().Format("2006-01-02")
}

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		// Tạo order đi qua idempotency để bấm đúp không ra hai hóa đơn
		orders.POST("", middleware.Idempotency(rdb), handler.Create)
		orders.GET("", handler.List)
		orders.GET("/:orderId", handler.Get)
		orders.PUT("/:orderId", handler.Save)
		orders.GET("/:orderId/receipt", handler.Receipt)

		orders.POST("/:orderId/items", handler.AddItems)
		orders.PATCH("/:orderId/items/:itemId/quantity", handler.UpdateItemQuantity)
		orders.PATCH("/:orderId/items/:itemId/note", handler.UpdateItemNote)
		orders.PATCH("/:orderId/items/:itemId/status", handler.UpdateItemStatus)
		orders.DELETE("/:orderId/items/:itemId", handler.RemoveItem)

		orders.POST("/:orderId/pay", middleware.Idempotency(rdb), handler.Pay)
		orders.POST("/:orderId/cancel", middleware.RBACAuthorize(rbacService, "order", "manage"), handler.Cancel)
		orders.POST("/:orderId/swap-table", handler.SwapTable)
	}

	tables := rg.Group("/tables")
	tables.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		tables.GET("", handler.TableBoard)
		tables.GET("/:table/order", handler.GetByTable)
	}

	rg.GET("/queue", middleware.AuthMiddleware(), middleware.ExtractUserID(), handler.Queue)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		admin.POST("/reset-day", middleware.RBACAuthorize(rbacService, "admin", "manage"), handler.ResetDay)
	}
}
