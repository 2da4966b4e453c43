package menuerrors

import (
	"net/http"

	"github.com/hoanvukhai/cafe-shop-management/internal/shared/apperror"
)

var (
	ErrMenuItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"menu item not found",
		http.StatusNotFound,
	)
	ErrMenuItemAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"menu item already exists",
		http.StatusConflict,
	)
	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"invalid menu category",
		http.StatusBadRequest,
	)
	ErrMenuItemUnavailable = apperror.New(
		apperror.CodeInvalidState,
		"menu item is not available",
		http.StatusBadRequest,
	)
)
