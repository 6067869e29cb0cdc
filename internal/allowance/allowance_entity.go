package allowance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	KindFixed         = "FIXED"
	KindPercentOfBase = "PERCENT_OF_BASE"
)

// AllowanceSetting is one versioned allowance rule. A settings change inserts
// a new row with a later EffectiveFrom instead of mutating the old one, so a
// calculation always reads the version in effect at calculation time and a
// paid record is never retroactively altered.
type AllowanceSetting struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index:idx_allowance_settings_company_name"`
	Name      string    `gorm:"type:varchar(120);not null;index:idx_allowance_settings_company_name"`

	Kind        string          `gorm:"type:varchar(20);not null"`
	AmountMinor int64           `gorm:"column:amount_minor;type:bigint;not null;default:0"`
	Percent     decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`

	EffectiveFrom time.Time `gorm:"type:date;not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (AllowanceSetting) TableName() string {
	return "allowance_settings"
}

// EmployeeAllowance narrows which settings apply to one employee. An
// employee with no link rows gets every company setting by default.
type EmployeeAllowance struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_employee_allowances_key,unique"`
	SettingName string   `gorm:"column:setting_name;type:varchar(120);not null;index:idx_employee_allowances_key,unique"`

	CreatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (EmployeeAllowance) TableName() string {
	return "employee_allowances"
}
