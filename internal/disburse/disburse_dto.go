package disburse

import "time"

const (
	ActionCalculate = "calculate"
	ActionPay       = "pay"
	ActionCancel    = "cancel"
)

type PayRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Month      string `json:"month" binding:"required"`
}

type BulkActionRequest struct {
	Action      string   `json:"action" binding:"required,oneof=calculate pay cancel"`
	EmployeeIDs []string `json:"employee_ids" binding:"required,min=1,dive,uuid"`
	Month       string   `json:"month" binding:"required"`
}

type ProcessAwardPaymentsRequest struct {
	Month string `json:"month" binding:"required"`
}

// Receipt proves a single payout: the record that was paid and the ledger
// posting that booked it.
type Receipt struct {
	RecordID    string    `json:"record_id"`
	EmployeeID  string    `json:"employee_id"`
	PostingID   string    `json:"posting_id"`
	NetPayMinor int64     `json:"net_pay_minor"`
	PaidAt      time.Time `json:"paid_at"`
}

// Result is one item of a bulk operation. A failed item carries the error
// code and message; the batch itself never fails.
type Result struct {
	EmployeeID string   `json:"employee_id"`
	Ok         bool     `json:"ok"`
	Receipt    *Receipt `json:"receipt,omitempty"`
	ErrorCode  string   `json:"error_code,omitempty"`
	Error      string   `json:"error,omitempty"`
}
