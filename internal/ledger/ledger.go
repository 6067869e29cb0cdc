package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/period"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Poster abstracts the accounting module. Implementations must be idempotent:
// posting the same (company, employee, period) twice yields the same posting
// ID and books the amount exactly once.
//
//go:generate mockgen -source=ledger.go -destination=mock/ledger_mock.go -package=mock
type Poster interface {
	PostPayment(ctx context.Context, companyID, employeeID string, p period.Period, amountMinor int64) (string, error)
}

// Posting is one salary payment booked against the company ledger.
type Posting struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`

	PeriodStart time.Time `gorm:"type:date;not null"`
	PeriodEnd   time.Time `gorm:"type:date;not null"`
	AmountMinor int64     `gorm:"column:amount_minor;type:bigint;not null"`

	CreatedAt time.Time
}

func (Posting) TableName() string {
	return "ledger_postings"
}

// postingNamespace seeds the deterministic posting IDs. Stable forever: a
// changed namespace would break idempotency against existing rows.
var postingNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

type gormPoster struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewGormPoster(db *gorm.DB, logger ...*zap.Logger) Poster {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &gormPoster{db: db, logger: l.Named("ledger.poster")}
}

// PostPayment derives the posting ID from the payment identity, so a retry
// after a lost acknowledgement inserts nothing and returns the same ID.
func (g *gormPoster) PostPayment(ctx context.Context, companyID, employeeID string, p period.Period, amountMinor int64) (string, error) {
	id := PostingID(companyID, employeeID, p)

	posting := Posting{
		ID:          id,
		CompanyID:   uuid.MustParse(companyID),
		EmployeeID:  uuid.MustParse(employeeID),
		PeriodStart: p.Start,
		PeriodEnd:   p.End,
		AmountMinor: amountMinor,
	}

	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(&posting).Error
	if err != nil {
		return "", err
	}

	g.logger.Info("ledger posting recorded",
		zap.String("posting_id", id.String()),
		zap.String("company_id", companyID),
		zap.String("employee_id", employeeID),
		zap.Int64("amount_minor", amountMinor),
	)

	return id.String(), nil
}

// PostingID is a pure function of the payment identity.
func PostingID(companyID, employeeID string, p period.Period) uuid.UUID {
	name := fmt.Sprintf("%s|%s|%s", companyID, employeeID, p.Key())
	return uuid.NewSHA1(postingNamespace, []byte(name))
}
