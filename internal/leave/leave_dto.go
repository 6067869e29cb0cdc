package leave

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	LeaveType  string `json:"leave_type" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	Reason     string `json:"reason"`
}

type RejectLeaveRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	CompanyID       string  `json:"company_id"`
	EmployeeID      string  `json:"employee_id"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	TotalDays       int     `json:"total_days"`
	Reason          string  `json:"reason,omitempty"`
	Status          string  `json:"status"`
	CreatedBy       string  `json:"created_by"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

type LeaveBalanceResponse struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	Year       int    `json:"year"`
	Entitled   int    `json:"entitled"`
	Used       int    `json:"used"`
	Remaining  int    `json:"remaining"`
}
