package attendance

type ClockInRequest struct {
	Notes *string `json:"notes"`
}

type ClockOutRequest struct {
	Notes *string `json:"notes"`
}

// ManualEntryRequest is the HR override: it replaces whatever the system
// recorded for that employee day.
type ManualEntryRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Date       string  `json:"date" binding:"required"`
	ClockIn    string  `json:"clock_in" binding:"required"`
	ClockOut   *string `json:"clock_out"`
	Notes      *string `json:"notes"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	CompanyID      string  `json:"company_id"`
	EmployeeID     string  `json:"employee_id"`
	AttendanceDate string  `json:"attendance_date"`
	ClockIn        string  `json:"clock_in"`
	ClockOut       *string `json:"clock_out,omitempty"`
	Source         string  `json:"source"`
	Notes          *string `json:"notes,omitempty"`
}
