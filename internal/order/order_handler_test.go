package order

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func newCreateContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("idempotency_cache_key", "idemp:/orders:user1:abc123")
	c.Set("idempotency_lock_key", "idemp:/orders:user1:abc123:lock")
	return c, w
}

func TestCreateHandler_CachesResponseAndReleasesLock(t *testing.T) {
	repo := newFakeOrderRepo()
	outbox := &fakeOutboxRepo{}
	svc, mock, cleanup := newTestService(t, repo, defaultMenu(), outbox)
	defer cleanup()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rdb, rmock := redismock.NewClientMock()
	h := NewHandlerWithRedis(svc, rdb)

	// Thành công: lưu cache 24h rồi mở khóa
	rmock.Regexp().ExpectSet("idemp:/orders:user1:abc123", `.*order_.*`, 24*time.Hour).SetVal("OK")
	rmock.ExpectDel("idemp:/orders:user1:abc123:lock").SetVal(1)

	c, w := newCreateContext(t, `{"table_number":"Bàn 01","items":[{"dish_id":"coffee_001","quantity":2}]}`)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestListHandler_PaginationMetaRoundsUp(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.listFn = func(ctx context.Context, status string, from, to *time.Time, offset, limit int) ([]Order, int64, error) {
		assert.Equal(t, 10, offset)
		assert.Equal(t, 10, limit)
		return []Order{}, 25, nil
	}
	outbox := &fakeOutboxRepo{}
	svc, _, cleanup := newTestService(t, repo, defaultMenu(), outbox)
	defer cleanup()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/orders?page=2&limit=10", nil)

	NewHandler(svc).List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	// 25 order, trang 10 dòng: 3 trang
	assert.Contains(t, w.Body.String(), `"total":25`)
	assert.Contains(t, w.Body.String(), `"totalPages":3`)
	assert.Contains(t, w.Body.String(), `"page":2`)
}

func TestCreateHandler_BadRequestReleasesLockWithoutCaching(t *testing.T) {
	repo := newFakeOrderRepo()
	outbox := &fakeOutboxRepo{}
	svc, _, cleanup := newTestService(t, repo, defaultMenu(), outbox)
	defer cleanup()

	rdb, rmock := redismock.NewClientMock()
	h := NewHandlerWithRedis(svc, rdb)

	// Lỗi validate: chỉ mở khóa, không được ghi cache
	rmock.ExpectDel("idemp:/orders:user1:abc123:lock").SetVal(1)

	c, w := newCreateContext(t, `{"table_number":""}`)
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, rmock.ExpectationsWereMet())
}
