package attendanceerrors

import (
	"net/http"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"already clocked in for this day",
		http.StatusConflict,
	)
	ErrClockInNotFound = apperror.New(
		apperror.CodeNotFound,
		"clock in not found for this day",
		http.StatusNotFound,
	)
	ErrAlreadyClockedOut = apperror.New(
		apperror.CodeConflict,
		"already clocked out for this day",
		http.StatusConflict,
	)
	ErrClockOutBeforeClockIn = apperror.New(
		apperror.CodeInvalidInput,
		"clock out must be after clock in",
		http.StatusBadRequest,
	)
	ErrPeriodClosed = apperror.New(
		apperror.CodeInvalidState,
		"attendance for a closed period is immutable",
		http.StatusConflict,
	)
)
