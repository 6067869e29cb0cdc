package salary

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusDraft      = "DRAFT"
	StatusCalculated = "CALCULATED"
	StatusPaid       = "PAID"
	StatusCancelled  = "CANCELLED"
)

// SalaryRecord is the computed payroll line for one employee and one period.
// The (company, employee, period_start) key makes recalculation an overwrite
// instead of a duplicate. PAID and CANCELLED rows never change again.
type SalaryRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index:idx_salary_records_key,unique"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index:idx_salary_records_key,unique"`
	PeriodStart time.Time `gorm:"type:date;not null;index:idx_salary_records_key,unique"`
	PeriodEnd   time.Time `gorm:"type:date;not null"`

	BaseProratedMinor        int64 `gorm:"column:base_prorated_minor;type:bigint;not null;default:0"`
	AllowanceMinor           int64 `gorm:"column:allowance_minor;type:bigint;not null;default:0"`
	AttendanceDeductionMinor int64 `gorm:"column:attendance_deduction_minor;type:bigint;not null;default:0"`
	PFMinor                  int64 `gorm:"column:pf_minor;type:bigint;not null;default:0"`
	BonusMinor               int64 `gorm:"column:bonus_minor;type:bigint;not null;default:0"`
	AwardMinor               int64 `gorm:"column:award_minor;type:bigint;not null;default:0"`
	NetPayMinor              int64 `gorm:"column:net_pay_minor;type:bigint;not null;default:0"`

	Status       string `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	CalculatedAt *time.Time
	PaidAt       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SalaryRecord) TableName() string {
	return "salary_records"
}

// canTransition encodes the record state machine. Everything not listed is
// forbidden, including any move out of PAID or CANCELLED.
func canTransition(from, to string) bool {
	switch from {
	case StatusDraft:
		return to == StatusCalculated || to == StatusCancelled
	case StatusCalculated:
		return to == StatusPaid || to == StatusCancelled
	default:
		return false
	}
}
