package award

import "time"

type CreateAwardRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	AmountMinor int64  `json:"amount_minor" binding:"min=0"`
}

type GrantRequest struct {
	AwardID    string `json:"award_id" binding:"required,uuid"`
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	// Month names the payroll period the grant pays out in, "2006-01".
	Month string `json:"month" binding:"required"`
	// AmountMinor overrides the award's default amount when positive.
	AmountMinor int64 `json:"amount_minor" binding:"min=0"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=UNPAID DESTROYED"`
}

type AwardResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	AmountMinor int64  `json:"amount_minor"`
}

type GrantResponse struct {
	ID          string     `json:"id"`
	AwardID     string     `json:"award_id"`
	EmployeeID  string     `json:"employee_id"`
	PeriodStart string     `json:"period_start"`
	PeriodEnd   string     `json:"period_end"`
	AmountMinor int64      `json:"amount_minor"`
	Status      string     `json:"status"`
	GrantedAt   string     `json:"granted_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}
