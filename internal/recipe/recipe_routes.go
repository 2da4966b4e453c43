package recipe

import (
	"github.com/hoanvukhai/cafe-shop-management/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	recipes := rg.Group("/recipes")
	recipes.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		recipes.GET("", handler.ListRecipes)
		recipes.GET("/:menuItemId", handler.GetRecipe)
		recipes.PUT("", middleware.RBACAuthorize(rbacService, "recipe", "write"), handler.UpsertRecipe)
	}

	preps := rg.Group("/prep-instructions")
	preps.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		preps.GET("", handler.ListPrepInstructions)
		preps.GET("/:key", handler.GetPrepInstruction)
	}
}
