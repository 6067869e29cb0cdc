package allowanceerrors

import (
	"net/http"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/apperror"
)

var (
	ErrInvalidKind = apperror.New(
		apperror.CodeInvalidInput,
		"allowance kind must be FIXED or PERCENT_OF_BASE",
		http.StatusBadRequest,
	)
	ErrNegativeValue = apperror.New(
		apperror.CodeInvalidInput,
		"allowance values cannot be negative",
		http.StatusBadRequest,
	)
	ErrSettingNotFound = apperror.New(
		apperror.CodeNotFound,
		"allowance setting not found",
		http.StatusNotFound,
	)
	ErrInvalidEffectiveFrom = apperror.New(
		apperror.CodeInvalidInput,
		"invalid effective_from date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
