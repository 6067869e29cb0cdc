package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

// LeaveRequest is a dated leave application. Only APPROVED requests ever
// influence payroll; approved ranges for one employee must not overlap.
type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_company_status"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_employee_dates"`

	LeaveType string    `gorm:"type:varchar(30);not null;default:'ANNUAL'"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	TotalDays int       `gorm:"type:int;not null;default:1"`
	Reason    string    `gorm:"type:text"`

	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leaves_company_status"`
	CreatedBy       uuid.UUID  `gorm:"type:uuid;not null"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason *string    `gorm:"type:text"`

	CreatedAt  time.Time
	UpdatedAt  time.Time
	ApprovedAt *time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index:idx_leaves_deleted_at"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// LeaveBalance tracks per-type entitlement for one calendar year.
// Remaining is always Entitled - Used; approval deducts Used here and the
// payroll engine only ever reads it, never re-deducts.
type LeaveBalance struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_balances_key,unique"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_balances_key,unique"`
	LeaveType  string    `gorm:"type:varchar(30);not null;index:idx_leave_balances_key,unique"`
	Year       int       `gorm:"type:int;not null;index:idx_leave_balances_key,unique"`

	Entitled int `gorm:"type:int;not null;default:0"`
	Used     int `gorm:"type:int;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

func (b LeaveBalance) Remaining() int {
	return b.Entitled - b.Used
}
