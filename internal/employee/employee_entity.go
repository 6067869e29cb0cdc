package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// EmployeeProfile is the read model of the HR-owned employees table. The
// payroll engine only consumes it: base salary, PF percentage and status
// are maintained by the HR module.
type EmployeeProfile struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName   string    `gorm:"column:full_name"`
	BaseSalary int64     `gorm:"column:base_salary;type:bigint;not null;default:0"` // minor units
	PFPercent  decimal.Decimal `gorm:"column:pf_percent;type:numeric(5,2);not null;default:0"`
	JoinDate   time.Time `gorm:"column:join_date;type:date"`
	Status     string    `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (EmployeeProfile) TableName() string {
	return "employees"
}
