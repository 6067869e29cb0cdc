package events

import "time"

const (
	TopicPayroll = "payroll"

	TypePaymentCompleted = "payroll.payment.completed.v1"
	TypePayslipRequested = "payroll.payslip.requested.v1"
)

// PaymentCompleted is emitted once per successful disbursement, after the
// salary record reaches PAID. Consumers drive notifications off it.
type PaymentCompleted struct {
	EventType   string    `json:"event_type"`
	CompanyID   string    `json:"company_id"`
	EmployeeID  string    `json:"employee_id"`
	RecordID    string    `json:"record_id"`
	PostingID   string    `json:"posting_id"`
	PeriodStart string    `json:"period_start"`
	PeriodEnd   string    `json:"period_end"`
	NetPayMinor int64     `json:"net_pay_minor"`
	PaidAt      time.Time `json:"paid_at"`
}

// PayslipRequested asks the document pipeline to render a payslip for a paid
// record. Rendering and delivery are external concerns.
type PayslipRequested struct {
	EventType   string `json:"event_type"`
	CompanyID   string `json:"company_id"`
	EmployeeID  string `json:"employee_id"`
	RecordID    string `json:"record_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}
