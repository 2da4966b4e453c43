package taskerrors

import (
	"net/http"

	"github.com/hoanvukhai/cafe-shop-management/internal/shared/apperror"
)

var (
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"task not found",
		http.StatusNotFound,
	)
	ErrInvalidSection = apperror.New(
		apperror.CodeInvalidInput,
		"invalid task section",
		http.StatusBadRequest,
	)
	ErrWeeklyNeedsFrequency = apperror.New(
		apperror.CodeInvalidInput,
		"weekly task requires frequency_days >= 1",
		http.StatusBadRequest,
	)
)
