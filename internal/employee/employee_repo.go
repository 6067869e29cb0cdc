package employee

import (
	"context"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindProfile(ctx context.Context, companyID, employeeID string) (*EmployeeProfile, error)
	ListActiveByCompany(ctx context.Context, companyID string) ([]EmployeeProfile, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindProfile(ctx context.Context, companyID, employeeID string) (*EmployeeProfile, error) {
	var p EmployeeProfile
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&p, "id = ?", employeeID).Error
	return &p, err
}

func (r *repository) ListActiveByCompany(ctx context.Context, companyID string) ([]EmployeeProfile, error) {
	var rows []EmployeeProfile
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("status = ?", StatusActive).
		Order("full_name ASC").
		Find(&rows).Error
	return rows, err
}
