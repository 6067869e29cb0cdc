package leave

import (
	"context"
	"database/sql"
	"time"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/connection"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindAllByCompany(ctx context.Context, companyID string) ([]LeaveRequest, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveRequest, error)
	ListApprovedByEmployeeAndRange(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]LeaveRequest, error)
	Update(ctx context.Context, l *LeaveRequest) error
	HasOverlappingApproved(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error)

	FindBalance(ctx context.Context, companyID, employeeID, leaveType string, year int) (*LeaveBalance, error)
	ListBalances(ctx context.Context, companyID, employeeID string, year int) ([]LeaveBalance, error)
	SaveBalance(ctx context.Context, b *LeaveBalance) error
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

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) ListApprovedByEmployeeAndRange(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Where("NOT (end_date < ? OR start_date > ?)", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("start_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) HasOverlappingApproved(
	ctx context.Context,
	companyID, employeeID string,
	startDate, endDate time.Time,
	excludeID *string,
) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) FindBalance(ctx context.Context, companyID, employeeID, leaveType string, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("leave_type = ?", leaveType).
		Where("year = ?", year).
		First(&b).Error
	return &b, err
}

func (r *repository) ListBalances(ctx context.Context, companyID, employeeID string, year int) ([]LeaveBalance, error) {
	var rows []LeaveBalance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		Order("leave_type ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) SaveBalance(ctx context.Context, b *LeaveBalance) error {
	return r.db.WithContext(ctx).Save(b).Error
}
