package salary

import (
	"context"
	"database/sql"
	"time"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/connection"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	// Upsert writes the record keyed on (company, employee, period_start),
	// overwriting the computed fields of an existing DRAFT or CALCULATED row.
	Upsert(ctx context.Context, rec *SalaryRecord) error
	FindByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, periodStart time.Time) (*SalaryRecord, error)
	FindByEmployeeAndPeriodForUpdate(ctx context.Context, companyID, employeeID string, periodStart time.Time) (*SalaryRecord, error)
	ListByCompanyAndPeriod(ctx context.Context, companyID string, periodStart time.Time) ([]SalaryRecord, error)
	UpdateStatus(ctx context.Context, companyID, id, status string, at time.Time) error
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

func (r *repository) Upsert(ctx context.Context, rec *SalaryRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "company_id"}, {Name: "employee_id"}, {Name: "period_start"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"period_end",
				"base_prorated_minor",
				"allowance_minor",
				"attendance_deduction_minor",
				"pf_minor",
				"bonus_minor",
				"award_minor",
				"net_pay_minor",
				"status",
				"calculated_at",
				"updated_at",
			}),
		}).
		Create(rec).Error
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, periodStart time.Time) (*SalaryRecord, error) {
	var rec SalaryRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("period_start = ?", periodStart.Format("2006-01-02")).
		First(&rec).Error
	return &rec, err
}

func (r *repository) FindByEmployeeAndPeriodForUpdate(ctx context.Context, companyID, employeeID string, periodStart time.Time) (*SalaryRecord, error) {
	var rec SalaryRecord
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("period_start = ?", periodStart.Format("2006-01-02")).
		First(&rec).Error
	return &rec, err
}

func (r *repository) ListByCompanyAndPeriod(ctx context.Context, companyID string, periodStart time.Time) ([]SalaryRecord, error) {
	var rows []SalaryRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("period_start = ?", periodStart.Format("2006-01-02")).
		Order("employee_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) UpdateStatus(ctx context.Context, companyID, id, status string, at time.Time) error {
	updates := map[string]interface{}{"status": status}
	switch status {
	case StatusCalculated:
		updates["calculated_at"] = at
	case StatusPaid:
		updates["paid_at"] = at
	}
	return r.db.WithContext(ctx).
		Model(&SalaryRecord{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Updates(updates).Error
}
