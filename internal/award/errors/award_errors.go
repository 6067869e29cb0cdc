package awarderrors

import (
	"net/http"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/apperror"
)

var (
	ErrAwardNotFound = apperror.New(
		apperror.CodeNotFound,
		"award not found",
		http.StatusNotFound,
	)
	ErrGrantNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee award not found",
		http.StatusNotFound,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"award status must be PENDING, PAID, UNPAID or DESTROYED",
		http.StatusBadRequest,
	)
	ErrGrantNotPending = apperror.New(
		apperror.CodeConflict,
		"only pending awards can change status",
		http.StatusConflict,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"award amount cannot be negative",
		http.StatusBadRequest,
	)
)
