package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// contextKey là kiểu riêng để tránh đụng key với thư viện khác
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
	loggerKey    contextKey = "logger"
)

// --- Request ID Helpers ---

// WithRequestID gắn Request ID vào context
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

// GetRequestID lấy Request ID từ context
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// --- User ID Helpers ---

// WithUserID gắn User ID vào context
func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userIDKey, uid)
}

// GetUserID lấy User ID từ context
func GetUserID(ctx context.Context) string {
	if uid, ok := ctx.Value(userIDKey).(string); ok {
		return uid
	}
	return ""
}

// --- Logger Helpers ---

// WithLogger gắn zap logger (thường đã được decorate) vào context
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger lấy logger từ context.
// Nếu không có, trả về logger global (nop khi chưa ReplaceGlobals)
// để không bao giờ panic.
func GetLogger(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	return zap.L()
}

// Metadata chứa thông tin tracing cơ bản
type Metadata struct {
	RequestID string
	UserID    string
}

// ExtractMetadata lấy toàn bộ thông tin tracing một lần cho logging thủ công
func ExtractMetadata(ctx context.Context) Metadata {
	return Metadata{
		RequestID: GetRequestID(ctx),
		UserID:    GetUserID(ctx),
	}
}
