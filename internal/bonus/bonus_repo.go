package bonus

import (
	"context"
	"database/sql"
	"time"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/connection"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=bonus_repo.go -destination=mock/bonus_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateSetting(ctx context.Context, s *BonusSetting) error
	FindSetting(ctx context.Context, companyID, id string) (*BonusSetting, error)
	ListSettings(ctx context.Context, companyID string) ([]BonusSetting, error)
	ListSettingsByTrigger(ctx context.Context, companyID, trigger string) ([]BonusSetting, error)

	CreateApplication(ctx context.Context, a *BonusApplication) error
	ApplicationExists(ctx context.Context, companyID, settingID, employeeID string, periodStart time.Time) (bool, error)
	ListAppliedByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, periodStart time.Time) ([]BonusApplication, error)
	MarkPaidByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, periodStart time.Time) error
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

func (r *repository) CreateSetting(ctx context.Context, s *BonusSetting) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindSetting(ctx context.Context, companyID, id string) (*BonusSetting, error) {
	var s BonusSetting
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) ListSettings(ctx context.Context, companyID string) ([]BonusSetting, error) {
	var rows []BonusSetting
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListSettingsByTrigger(ctx context.Context, companyID, trigger string) ([]BonusSetting, error) {
	var rows []BonusSetting
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("trigger = ?", trigger).
		Find(&rows).Error
	return rows, err
}

func (r *repository) CreateApplication(ctx context.Context, a *BonusApplication) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) ApplicationExists(ctx context.Context, companyID, settingID, employeeID string, periodStart time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&BonusApplication{}).
		Scopes(tenant.Scope(companyID)).
		Where("setting_id = ?", settingID).
		Where("employee_id = ?", employeeID).
		Where("period_start = ?", periodStart.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ListAppliedByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, periodStart time.Time) ([]BonusApplication, error) {
	var rows []BonusApplication
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("period_start = ?", periodStart.Format("2006-01-02")).
		Where("status = ?", StatusApplied).
		Find(&rows).Error
	return rows, err
}

func (r *repository) MarkPaidByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, periodStart time.Time) error {
	return r.db.WithContext(ctx).
		Model(&BonusApplication{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("period_start = ?", periodStart.Format("2006-01-02")).
		Where("status = ?", StatusApplied).
		Update("status", StatusPaid).Error
}
