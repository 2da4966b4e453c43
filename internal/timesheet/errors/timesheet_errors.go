package timesheeterrors

import (
	"net/http"

	"github.com/hoanvukhai/cafe-shop-management/internal/shared/apperror"
)

var (
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"timesheet record not found",
		http.StatusNotFound,
	)
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeConflict,
		"an open shift already exists, check out first",
		http.StatusConflict,
	)
	ErrNoOpenShift = apperror.New(
		apperror.CodeInvalidState,
		"no open shift to check out",
		http.StatusBadRequest,
	)
	ErrRecordNotPending = apperror.New(
		apperror.CodeInvalidState,
		"only pending records can be modified",
		http.StatusBadRequest,
	)
	ErrShiftStillOpen = apperror.New(
		apperror.CodeInvalidState,
		"shift has no check-out yet",
		http.StatusBadRequest,
	)
	ErrCheckOutBeforeCheckIn = apperror.New(
		apperror.CodeInvalidInput,
		"check-out must be after check-in",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"invalid period filter",
		http.StatusBadRequest,
	)
)
