package staff

import (
	"github.com/hoanvukhai/cafe-shop-management/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	staffGroup := rg.Group("/staff")
	staffGroup.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		staffGroup.GET("", middleware.RBACAuthorize(rbacService, "staff", "read"), handler.List)
		staffGroup.GET("/:userId", middleware.RBACAuthorize(rbacService, "staff", "read"), handler.GetByUserID)
		staffGroup.POST("", middleware.RBACAuthorize(rbacService, "staff", "write"), handler.Create)
		staffGroup.PATCH("/:userId", middleware.RBACAuthorize(rbacService, "staff", "write"), handler.Update)
	}
}
