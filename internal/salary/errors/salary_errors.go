package salaryerrors

import (
	"net/http"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/apperror"
)

var (
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary record not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrAlreadyPaid = apperror.New(
		apperror.CodeInvalidState,
		"salary record is already paid",
		http.StatusConflict,
	)
	ErrRecordNotCalculated = apperror.New(
		apperror.CodeInvalidState,
		"salary record has not been calculated",
		http.StatusConflict,
	)
	ErrRecordCancelled = apperror.New(
		apperror.CodeInvalidState,
		"salary record is cancelled",
		http.StatusConflict,
	)
	ErrNegativeNetPay = apperror.New(
		apperror.CodeInvalidState,
		"computed net pay is negative; record kept in draft",
		http.StatusUnprocessableEntity,
	)
	ErrConcurrentPaymentInProgress = apperror.New(
		apperror.CodeConflict,
		"a payment for this record is already in progress",
		http.StatusConflict,
	)
	ErrLedgerPostingFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"ledger posting failed",
		http.StatusBadGateway,
	)
	ErrReconciliationRequired = apperror.New(
		apperror.CodeReconciliation,
		"payment posted to ledger but record state is unconfirmed; manual reconciliation required",
		http.StatusInternalServerError,
	)
)
