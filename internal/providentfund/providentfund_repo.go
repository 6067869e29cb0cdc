package providentfund

import (
	"context"
	"database/sql"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/connection"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=providentfund_repo.go -destination=mock/providentfund_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *ProvidentFundAccount) error
	FindByEmployee(ctx context.Context, companyID, employeeID string) (*ProvidentFundAccount, error)
	ListByCompany(ctx context.Context, companyID string) ([]ProvidentFundAccount, error)
	Update(ctx context.Context, a *ProvidentFundAccount) error
	Accrue(ctx context.Context, companyID, employeeID string, amountMinor int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, a *ProvidentFundAccount) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByEmployee(ctx context.Context, companyID, employeeID string) (*ProvidentFundAccount, error) {
	var a ProvidentFundAccount
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&a, "employee_id = ?", employeeID).Error
	return &a, err
}

func (r *repository) ListByCompany(ctx context.Context, companyID string) ([]ProvidentFundAccount, error) {
	var rows []ProvidentFundAccount
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *ProvidentFundAccount) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// Accrue increments the append-only balance atomically in SQL, so two
// concurrent disbursements can never lose an increment.
func (r *repository) Accrue(ctx context.Context, companyID, employeeID string, amountMinor int64) error {
	return r.db.WithContext(ctx).
		Model(&ProvidentFundAccount{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		UpdateColumn("accumulated_minor", gorm.Expr("accumulated_minor + ?", amountMinor)).Error
}
