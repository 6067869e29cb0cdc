package allowance

import (
	"context"
	"database/sql"
	"time"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/connection"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=allowance_repo.go -destination=mock/allowance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateSetting(ctx context.Context, s *AllowanceSetting) error
	ListSettings(ctx context.Context, companyID string) ([]AllowanceSetting, error)
	ListEffectiveSettings(ctx context.Context, companyID string, asOf time.Time) ([]AllowanceSetting, error)
	DeleteSetting(ctx context.Context, companyID, id string) error

	AssignEmployee(ctx context.Context, link *EmployeeAllowance) error
	UnassignEmployee(ctx context.Context, companyID, employeeID, settingName string) error
	ListEmployeeLinks(ctx context.Context, companyID, employeeID string) ([]EmployeeAllowance, error)
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

func (r *repository) CreateSetting(ctx context.Context, s *AllowanceSetting) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) ListSettings(ctx context.Context, companyID string) ([]AllowanceSetting, error) {
	var rows []AllowanceSetting
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC, effective_from DESC").
		Find(&rows).Error
	return rows, err
}

// ListEffectiveSettings returns, per setting name, the newest version whose
// effective_from is on or before asOf. This is the snapshot a calculation
// reads; later versions never leak into earlier periods.
func (r *repository) ListEffectiveSettings(ctx context.Context, companyID string, asOf time.Time) ([]AllowanceSetting, error) {
	var rows []AllowanceSetting
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("effective_from <= ?", asOf.Format("2006-01-02")).
		Order("name ASC, effective_from DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	effective := make([]AllowanceSetting, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if seen[row.Name] {
			continue
		}
		seen[row.Name] = true
		effective = append(effective, row)
	}
	return effective, nil
}

func (r *repository) DeleteSetting(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&AllowanceSetting{}, "id = ?", id).Error
}

func (r *repository) AssignEmployee(ctx context.Context, link *EmployeeAllowance) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *repository) UnassignEmployee(ctx context.Context, companyID, employeeID, settingName string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("setting_name = ?", settingName).
		Delete(&EmployeeAllowance{}).Error
}

func (r *repository) ListEmployeeLinks(ctx context.Context, companyID, employeeID string) ([]EmployeeAllowance, error) {
	var rows []EmployeeAllowance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Find(&rows).Error
	return rows, err
}
