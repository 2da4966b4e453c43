package recipeerrors

import (
	"net/http"

	"github.com/hoanvukhai/cafe-shop-management/internal/shared/apperror"
)

var (
	ErrRecipeNotFound = apperror.New(
		apperror.CodeNotFound,
		"recipe not found",
		http.StatusNotFound,
	)
	ErrPrepInstructionNotFound = apperror.New(
		apperror.CodeNotFound,
		"prep instruction not found",
		http.StatusNotFound,
	)
)
