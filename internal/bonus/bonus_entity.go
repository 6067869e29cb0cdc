package bonus

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TriggerEid      = "EID"
	TriggerFestival = "FESTIVAL"
	TriggerManual   = "MANUAL"

	RuleFixed         = "FIXED"
	RulePercentOfBase = "PERCENT_OF_BASE"

	StatusApplied = "APPLIED"
	StatusPaid    = "PAID"
)

// BonusSetting is a closed rule variant: either a fixed amount or a
// percentage of the employee's base salary, fired by one of three triggers.
type BonusSetting struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Trigger   string    `gorm:"type:varchar(20);not null"`

	Rule        string          `gorm:"type:varchar(20);not null"`
	AmountMinor int64           `gorm:"column:amount_minor;type:bigint;not null;default:0"`
	Percent     decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (BonusSetting) TableName() string {
	return "bonus_settings"
}

// BonusApplication records that a setting was applied to an employee for a
// period. The unique key is what makes triggers idempotent: re-firing a
// trigger can never double-apply.
type BonusApplication struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	SettingID   uuid.UUID `gorm:"type:uuid;not null;index:idx_bonus_applications_key,unique"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index:idx_bonus_applications_key,unique"`
	PeriodStart time.Time `gorm:"type:date;not null;index:idx_bonus_applications_key,unique"`
	PeriodEnd   time.Time `gorm:"type:date;not null"`

	AmountMinor int64  `gorm:"column:amount_minor;type:bigint;not null;default:0"`
	Status      string `gorm:"type:varchar(20);not null;default:'APPLIED'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (BonusApplication) TableName() string {
	return "bonus_applications"
}
