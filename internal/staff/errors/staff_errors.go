package stafferrors

import (
	"net/http"

	"github.com/hoanvukhai/cafe-shop-management/internal/shared/apperror"
)

var (
	ErrStaffNotFound = apperror.New(
		apperror.CodeNotFound,
		"staff member not found",
		http.StatusNotFound,
	)
	ErrStaffAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"staff member already exists",
		http.StatusConflict,
	)
	ErrStaffInactive = apperror.New(
		apperror.CodeInvalidState,
		"staff member is inactive",
		http.StatusBadRequest,
	)
)
