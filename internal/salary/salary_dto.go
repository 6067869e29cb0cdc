package salary

import "time"

type CalculateRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Month      string `json:"month" binding:"required"`
}

type CancelRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Month      string `json:"month" binding:"required"`
}

type RecordResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	BaseProratedMinor        int64 `json:"base_prorated_minor"`
	AllowanceMinor           int64 `json:"allowance_minor"`
	AttendanceDeductionMinor int64 `json:"attendance_deduction_minor"`
	PFMinor                  int64 `json:"pf_minor"`
	BonusMinor               int64 `json:"bonus_minor"`
	AwardMinor               int64 `json:"award_minor"`
	NetPayMinor              int64 `json:"net_pay_minor"`

	Status       string     `json:"status"`
	CalculatedAt *time.Time `json:"calculated_at,omitempty"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
}
