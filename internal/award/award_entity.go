package award

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "PENDING"
	StatusPaid      = "PAID"
	StatusUnpaid    = "UNPAID"
	StatusDestroyed = "DESTROYED"
)

// Award is a company-defined recognition with a cash component.
type Award struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(120);not null"`
	Description string    `gorm:"type:text"`
	AmountMinor int64     `gorm:"column:amount_minor;type:bigint;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Award) TableName() string {
	return "awards"
}

// EmployeeAward is a grant of an award to one employee, bound to one payroll
// period. Only that period's disbursement sums and settles the grant; UNPAID
// ones are withheld and DESTROYED ones are permanently voided.
type EmployeeAward struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	AwardID    uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`

	PeriodStart time.Time `gorm:"type:date;not null;index"`
	PeriodEnd   time.Time `gorm:"type:date;not null"`

	AmountMinor int64     `gorm:"column:amount_minor;type:bigint;not null;default:0"`
	Status      string    `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	GrantedAt   time.Time `gorm:"type:date;not null"`
	PaidAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EmployeeAward) TableName() string {
	return "employee_awards"
}
