package analytics

import (
	"github.com/hoanvukhai/cafe-shop-management/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	stats := rg.Group("/analytics", middleware.AuthMiddleware(), middleware.ExtractUserID(), middleware.RBACAuthorize(rbacService, "analytics", "read"))
	{
		stats.GET("/revenue", handler.Revenue)
		stats.GET("/best-sellers", handler.BestSellers)
		stats.GET("/peak-hours", handler.PeakHours)
	}
}
