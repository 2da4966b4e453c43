package analytics

import (
	"net/http"

	"github.com/hoanvukhai/cafe-shop-management/internal/shared/apperror"
	"github.com/hoanvukhai/cafe-shop-management/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

func bindPeriod(c *gin.Context) (PeriodQuery, bool) {
	var q PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return q, false
	}
	return q, true
}

func (h *Handler) Revenue(c *gin.Context) {
	q, ok := bindPeriod(c)
	if !ok {
		return
	}

	resp, err := h.service.Revenue(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) BestSellers(c *gin.Context) {
	q, ok := bindPeriod(c)
	if !ok {
		return
	}

	rows, err := h.service.BestSellers(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows, nil)
}

func (h *Handler) PeakHours(c *gin.Context) {
	q, ok := bindPeriod(c)
	if !ok {
		return
	}

	rows, err := h.service.PeakHours(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows, nil)
}
