package providentfunderrors

import (
	"net/http"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/apperror"
)

var (
	ErrAccountNotFound = apperror.New(
		apperror.CodeNotFound,
		"provident fund account not found",
		http.StatusNotFound,
	)
	ErrAccountExists = apperror.New(
		apperror.CodeConflict,
		"provident fund account already exists for this employee",
		http.StatusConflict,
	)
	ErrInvalidPercentage = apperror.New(
		apperror.CodeInvalidInput,
		"pf percentage must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrNegativeAccrual = apperror.New(
		apperror.CodeInvalidInput,
		"pf accrual amount cannot be negative",
		http.StatusBadRequest,
	)
)
