package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	ordererrors "github.com/hoanvukhai/cafe-shop-management/internal/order/errors"
	"github.com/hoanvukhai/cafe-shop-management/internal/shared/apperror"
	"github.com/hoanvukhai/cafe-shop-management/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

// releaseIdempotencyLock mở khóa do middleware Idempotency giữ,
// gọi bằng defer để request lỗi cũng không kẹt khóa 30 giây.
func (h *Handler) releaseIdempotencyLock(c *gin.Context) {
	if h.rdb == nil {
		return
	}
	if lk := c.GetString("idempotency_lock_key"); lk != "" {
		h.rdb.Del(c.Request.Context(), lk)
	}
}

// cacheIdempotentResponse lưu response thành công để request trùng
// Idempotency-Key nhận lại đúng kết quả cũ thay vì tạo lần hai.
func (h *Handler) cacheIdempotentResponse(c *gin.Context, resp any) {
	if h.rdb == nil {
		return
	}
	if ck := c.GetString("idempotency_cache_key"); ck != "" {
		if payload, err := json.Marshal(resp); err == nil {
			_ = h.rdb.Set(c.Request.Context(), ck, string(payload), 24*time.Hour).Err()
		}
	}
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

func (h *Handler) Create(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.MapValidationError(err)
		writeError(c, mapped)
		return
	}

	actor := c.GetString("user_name")
	if actor == "" {
		actor = c.GetString("user_id")
	}

	resp, err := h.service.CreateOrder(c.Request.Context(), actor, req)
	if err != nil {
		writeError(c, err)
		return
	}

	h.cacheIdempotentResponse(c, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.GetOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByTable(c *gin.Context) {
	resp, err := h.service.GetOrderByTable(c.Request.Context(), c.Param("table"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	var q ListOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		mapped := apperror.MapValidationError(err)
		writeError(c, mapped)
		return
	}

	rows, total, err := h.service.ListOrders(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, q.Page, q.Limit)
	response.Success(c, http.StatusOK, rows, &meta)
}

func (h *Handler) Save(c *gin.Context) {
	var req SaveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.MapValidationError(err)
		writeError(c, mapped)
		return
	}

	resp, err := h.service.Save(c.Request.Context(), c.Param("orderId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AddItems(c *gin.Context) {
	var req AddItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.MapValidationError(err)
		writeError(c, mapped)
		return
	}

	resp, err := h.service.AddItems(c.Request.Context(), c.Param("orderId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateItemQuantity(c *gin.Context) {
	var req UpdateItemQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.MapValidationError(err)
		writeError(c, mapped)
		return
	}

	resp, err := h.service.UpdateItemQuantity(c.Request.Context(), c.Param("orderId"), c.Param("itemId"), req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateItemNote(c *gin.Context) {
	var req UpdateItemNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.MapValidationError(err)
		writeError(c, mapped)
		return
	}

	resp, err := h.service.UpdateItemNote(c.Request.Context(), c.Param("orderId"), c.Param("itemId"), req.Note)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateItemStatus(c *gin.Context) {
	var req UpdateItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.MapValidationError(err)
		writeError(c, mapped)
		return
	}

	resp, err := h.service.UpdateItemStatus(c.Request.Context(), c.Param("orderId"), c.Param("itemId"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RemoveItem(c *gin.Context) {
	resp, err := h.service.RemoveItem(c.Request.Context(), c.Param("orderId"), c.Param("itemId"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Pay(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	resp, err := h.service.Pay(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		writeError(c, err)
		return
	}

	h.cacheIdempotentResponse(c, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	resp, err := h.service.Cancel(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SwapTable(c *gin.Context) {
	var req SwapTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.MapValidationError(err)
		writeError(c, mapped)
		return
	}

	resp, err := h.service.SwapTable(c.Request.Context(), c.Param("orderId"), req.ToTable)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) TableBoard(c *gin.Context) {
	board, err := h.service.GetTableBoard(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, board, nil)
}

func (h *Handler) Queue(c *gin.Context) {
	queue, err := h.service.GetQueue(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, queue, nil)
}

// Receipt trả trang HTML in nhiệt 80mm, không bọc envelope JSON.
// ?type=payment là hóa đơn thanh toán: chốt và thu tiền order luôn
// (kẹt món chưa pha chế thì báo lỗi như nút thanh toán).
func (h *Handler) Receipt(c *gin.Context) {
	orderID := c.Param("orderId")

	if c.Query("type") == "payment" {
		if _, err := h.service.Pay(c.Request.Context(), orderID); err != nil &&
			!errors.Is(err, ordererrors.ErrOrderAlreadyPaid) {
			writeError(c, err)
			return
		}
	}

	resp, err := h.service.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	shopName := os.Getenv("SHOP_NAME")
	if shopName == "" {
		shopName = "Cafe Nhà Mình"
	}
	html, err := RenderReceipt(resp, shopName, os.Getenv("SHOP_ADDRESS"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) ResetDay(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = timeNowDate()
	}

	deleted, err := h.service.ResetDay(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"date": date, "deleted_orders": deleted}, nil)
}
