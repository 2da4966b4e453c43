package middleware

import (
	"net/http"

	"github.com/hoanvukhai/cafe-shop-management/internal/shared/response"

	"github.com/gin-gonic/gin"
)

func ExtractUserID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, exists := ctx.Get("user_id")
		if !exists {
			response.Error(ctx, http.StatusUnauthorized, "UNAUTHORIZED", "User chưa đăng nhập", nil)
			ctx.Abort()
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			response.Error(ctx, http.StatusUnauthorized, "INVALID_USER_ID", "user_id không hợp lệ", nil)
			ctx.Abort()
			return
		}

		// Set lại với kiểu chắc chắn là string
		ctx.Set("user_id_validated", userIDStr)
		ctx.Next()
	}
}
