package allowance

type CreateSettingRequest struct {
	Name          string `json:"name" binding:"required"`
	Kind          string `json:"kind" binding:"required,oneof=FIXED PERCENT_OF_BASE"`
	AmountMinor   int64  `json:"amount_minor"`
	Percent       string `json:"percent"`
	EffectiveFrom string `json:"effective_from" binding:"required"`
}

type AssignEmployeeRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	SettingName string `json:"setting_name" binding:"required"`
}

type SettingResponse struct {
	ID            string `json:"id"`
	CompanyID     string `json:"company_id"`
	Name          string `json:"name"`
	Kind          string `json:"kind"`
	AmountMinor   int64  `json:"amount_minor,omitempty"`
	Percent       string `json:"percent,omitempty"`
	EffectiveFrom string `json:"effective_from"`
}
