package providentfund

type OpenAccountRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Percentage string `json:"percentage" binding:"required"`
}

type SetPercentageRequest struct {
	Percentage string `json:"percentage" binding:"required"`
}

type AccountResponse struct {
	ID               string `json:"id"`
	CompanyID        string `json:"company_id"`
	EmployeeID       string `json:"employee_id"`
	Percentage       string `json:"percentage"`
	AccumulatedMinor int64  `json:"accumulated_minor"`
}
