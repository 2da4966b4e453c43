package timesheet

import (
	"github.com/hoanvukhai/cafe-shop-management/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	ts := rg.Group("/timesheets")
	ts.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		ts.POST("/check-in", handler.CheckIn)
		ts.POST("/check-out", handler.CheckOut)
		ts.GET("/open", handler.OpenShift)
		ts.GET("", handler.List)

		admin := ts.Group("", middleware.RBACAuthorize(rbacService, "timesheet", "manage"))
		{
			admin.GET("/summary", handler.Summary)
			admin.GET("/export", handler.Export)
			admin.POST("", handler.AdminCreate)
			admin.PATCH("/:id", handler.AdminUpdate)
			admin.DELETE("/:id", handler.AdminDelete)
			admin.POST("/:id/approve", handler.Approve)
			admin.POST("/:id/reject", handler.Reject)
		}
	}
}
