package bonus

type CreateSettingRequest struct {
	Name        string `json:"name" binding:"required"`
	Trigger     string `json:"trigger" binding:"required,oneof=EID FESTIVAL MANUAL"`
	Rule        string `json:"rule" binding:"required,oneof=FIXED PERCENT_OF_BASE"`
	AmountMinor int64  `json:"amount_minor"`
	Percent     string `json:"percent"`
}

// ApplyRequest fires a trigger for a whole company and period. EmployeeIDs
// narrows the target set; empty means every active employee.
type ApplyRequest struct {
	Month       string   `json:"month" binding:"required"`
	EmployeeIDs []string `json:"employee_ids"`
}

type SettingResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	Name        string `json:"name"`
	Trigger     string `json:"trigger"`
	Rule        string `json:"rule"`
	AmountMinor int64  `json:"amount_minor,omitempty"`
	Percent     string `json:"percent,omitempty"`
}

type ApplyResult struct {
	EmployeeID  string `json:"employee_id"`
	SettingID   string `json:"setting_id"`
	SettingName string `json:"setting_name"`
	AmountMinor int64  `json:"amount_minor,omitempty"`
	Applied     bool   `json:"applied"`
	Skipped     bool   `json:"skipped,omitempty"`
	Error       string `json:"error,omitempty"`
}
