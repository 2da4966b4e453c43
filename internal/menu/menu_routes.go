package menu

import (
	"github.com/hoanvukhai/cafe-shop-management/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	menus := rg.Group("/menu")
	{
		// Thực đơn cho khách quét QR, không cần đăng nhập
		menus.GET("", handler.GetPublicMenu)

		items := menus.Group("/items")
		items.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
		{
			items.GET("", middleware.RBACAuthorize(rbacService, "menu", "read"), handler.ListAll)
			items.GET("/:id", middleware.RBACAuthorize(rbacService, "menu", "read"), handler.GetByID)
			items.POST("", middleware.RBACAuthorize(rbacService, "menu", "write"), handler.Create)
			items.PATCH("/:id", middleware.RBACAuthorize(rbacService, "menu", "write"), handler.Update)
			items.DELETE("/:id", middleware.RBACAuthorize(rbacService, "menu", "write"), handler.Delete)
		}
	}
}
