package task

import (
	"github.com/hoanvukhai/cafe-shop-management/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	tasks := rg.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		tasks.GET("", handler.GetChecklist)
		tasks.POST("/:id/toggle", handler.Toggle)

		admin := tasks.Group("", middleware.RBACAuthorize(rbacService, "task", "manage"))
		{
			admin.POST("", handler.Create)
			admin.PATCH("/:id", handler.Update)
			admin.DELETE("/:id", handler.Delete)
			admin.POST("/reset-daily", handler.ResetDaily)
		}
	}
}
