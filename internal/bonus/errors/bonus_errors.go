package bonuserrors

import (
	"net/http"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/apperror"
)

var (
	ErrInvalidTrigger = apperror.New(
		apperror.CodeInvalidInput,
		"bonus trigger must be EID, FESTIVAL or MANUAL",
		http.StatusBadRequest,
	)
	ErrInvalidRule = apperror.New(
		apperror.CodeInvalidInput,
		"bonus rule must be FIXED or PERCENT_OF_BASE",
		http.StatusBadRequest,
	)
	ErrNegativeValue = apperror.New(
		apperror.CodeInvalidInput,
		"bonus values cannot be negative",
		http.StatusBadRequest,
	)
	ErrSettingNotFound = apperror.New(
		apperror.CodeNotFound,
		"bonus setting not found",
		http.StatusNotFound,
	)
	ErrDuplicateApplication = apperror.New(
		apperror.CodeConflict,
		"bonus already applied for this employee and period",
		http.StatusConflict,
	)
)
