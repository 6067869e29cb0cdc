package providentfund

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProvidentFundAccount accumulates an employee's PF contributions. The
// balance is append-only: it only ever grows, and only by the disbursement
// orchestrator at a successful payout.
type ProvidentFundAccount struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_pf_accounts_key,unique"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_pf_accounts_key,unique"`

	Percentage       decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	AccumulatedMinor int64           `gorm:"column:accumulated_minor;type:bigint;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ProvidentFundAccount) TableName() string {
	return "provident_fund_accounts"
}
