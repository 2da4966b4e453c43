package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newIdempotencyRouter(rdb *redis.Client, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/orders", func(c *gin.Context) {
		c.Set("user_id_validated", userID)
	}, Idempotency(rdb), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return r
}

func postWithKey(r *gin.Engine, idempKey string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{}`))
	req.Header.Set("Idempotency-Key", idempKey)
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ServesCachedResponse(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("idemp:/orders:user1:abc123").SetVal(`{"order_id":"order_ab12cd34"}`)

	w := postWithKey(newIdempotencyRouter(rdb, "user1"), "abc123")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "order_ab12cd34")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_CacheKeyScopedPerUser(t *testing.T) {
	// Hai user dùng chung một Idempotency-Key không được đụng cache của nhau
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("idemp:/orders:user2:abc123").RedisNil()
	mock.ExpectSetNX("idemp:/orders:user2:abc123:lock", "locked", 30*time.Second).SetVal(true)

	w := postWithKey(newIdempotencyRouter(rdb, "user2"), "abc123")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_DuplicateInFlightGetsConflict(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("idemp:/orders:user1:abc123").RedisNil()
	mock.ExpectSetNX("idemp:/orders:user1:abc123:lock", "locked", 30*time.Second).SetVal(false)

	w := postWithKey(newIdempotencyRouter(rdb, "user1"), "abc123")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "PROCESSING")
	assert.NoError(t, mock.ExpectationsWereMet())
}
