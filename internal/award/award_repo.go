package award

import (
	"context"
	"database/sql"
	"time"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/connection"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=award_repo.go -destination=mock/award_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateAward(ctx context.Context, a *Award) error
	FindAward(ctx context.Context, companyID, id string) (*Award, error)
	ListAwards(ctx context.Context, companyID string) ([]Award, error)

	CreateGrant(ctx context.Context, g *EmployeeAward) error
	FindGrant(ctx context.Context, companyID, id string) (*EmployeeAward, error)
	ListGrants(ctx context.Context, companyID string) ([]EmployeeAward, error)
	ListPendingByEmployee(ctx context.Context, companyID, employeeID string, periodStart time.Time) ([]EmployeeAward, error)
	ListEmployeesWithPending(ctx context.Context, companyID string, periodStart time.Time) ([]string, error)
	UpdateGrantStatus(ctx context.Context, companyID, id, status string) error
	MarkPaidByEmployee(ctx context.Context, companyID, employeeID string, periodStart time.Time, paidAt time.Time) error
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

func (r *repository) CreateAward(ctx context.Context, a *Award) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAward(ctx context.Context, companyID, id string) (*Award, error) {
	var a Award
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) ListAwards(ctx context.Context, companyID string) ([]Award, error) {
	var rows []Award
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CreateGrant(ctx context.Context, g *EmployeeAward) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *repository) FindGrant(ctx context.Context, companyID, id string) (*EmployeeAward, error) {
	var g EmployeeAward
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&g, "id = ?", id).Error
	return &g, err
}

func (r *repository) ListGrants(ctx context.Context, companyID string) ([]EmployeeAward, error) {
	var rows []EmployeeAward
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("granted_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListPendingByEmployee(ctx context.Context, companyID, employeeID string, periodStart time.Time) ([]EmployeeAward, error) {
	var rows []EmployeeAward
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("period_start = ?", periodStart.Format("2006-01-02")).
		Where("status = ?", StatusPending).
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListEmployeesWithPending(ctx context.Context, companyID string, periodStart time.Time) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&EmployeeAward{}).
		Scopes(tenant.Scope(companyID)).
		Where("period_start = ?", periodStart.Format("2006-01-02")).
		Where("status = ?", StatusPending).
		Distinct("employee_id").
		Pluck("employee_id", &ids).Error
	return ids, err
}

func (r *repository) UpdateGrantStatus(ctx context.Context, companyID, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&EmployeeAward{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) MarkPaidByEmployee(ctx context.Context, companyID, employeeID string, periodStart time.Time, paidAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&EmployeeAward{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("period_start = ?", periodStart.Format("2006-01-02")).
		Where("status = ?", StatusPending).
		Updates(map[string]interface{}{
			"status":  StatusPaid,
			"paid_at": paidAt,
		}).Error
}
