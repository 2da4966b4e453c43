package ordererrors

import (
	"net/http"

	"github.com/hoanvukhai/cafe-shop-management/internal/shared/apperror"
)

var (
	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"order not found",
		http.StatusNotFound,
	)
	ErrOrderItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"order item not found",
		http.StatusNotFound,
	)
	ErrInvalidTable = apperror.New(
		apperror.CodeInvalidInput,
		"invalid table number",
		http.StatusBadRequest,
	)
	ErrTableOccupied = apperror.New(
		apperror.CodeConflict,
		"table already has an open order",
		http.StatusConflict,
	)
	ErrTargetTableOccupied = apperror.New(
		apperror.CodeConflict,
		"target table already has an open order",
		http.StatusConflict,
	)
	ErrOrderNotPending = apperror.New(
		apperror.CodeInvalidState,
		"order is not open",
		http.StatusBadRequest,
	)
	ErrOrderAlreadyPaid = apperror.New(
		apperror.CodeInvalidState,
		"order has already been paid",
		http.StatusBadRequest,
	)
	ErrUnpreparedItems = apperror.New(
		apperror.CodeInvalidState,
		"order still has unprepared items",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidItemTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid item status transition",
		http.StatusBadRequest,
	)
)
