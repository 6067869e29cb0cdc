package providentfund

import (
	"context"
	"database/sql"
	"errors"

	providentfunderrors "github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/providentfund/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=providentfund_service.go -destination=mock/providentfund_service_mock.go -package=mock
type Service interface {
	Open(ctx context.Context, companyID string, req OpenAccountRequest) (AccountResponse, error)
	GetByEmployee(ctx context.Context, companyID, employeeID string) (AccountResponse, error)
	GetAll(ctx context.Context, companyID string) ([]AccountResponse, error)
	SetPercentage(ctx context.Context, companyID, employeeID string, req SetPercentageRequest) (AccountResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Open(ctx context.Context, companyID string, req OpenAccountRequest) (AccountResponse, error) {
	pct, err := parsePercentage(req.Percentage)
	if err != nil {
		return AccountResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AccountResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	_, err = qtx.FindByEmployee(ctx, companyID, req.EmployeeID)
	if err == nil {
		return AccountResponse{}, providentfunderrors.ErrAccountExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AccountResponse{}, err
	}

	account := &ProvidentFundAccount{
		ID:         uuid.New(),
		CompanyID:  uuid.MustParse(companyID),
		EmployeeID: uuid.MustParse(req.EmployeeID),
		Percentage: pct,
	}

	if err := qtx.Create(ctx, account); err != nil {
		return AccountResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AccountResponse{}, err
	}
	return mapToResponse(*account), nil
}

func (s *service) GetByEmployee(ctx context.Context, companyID, employeeID string) (AccountResponse, error) {
	account, err := s.repo.FindByEmployee(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountResponse{}, providentfunderrors.ErrAccountNotFound
		}
		return AccountResponse{}, err
	}
	return mapToResponse(*account), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]AccountResponse, error) {
	rows, err := s.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	res := make([]AccountResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) SetPercentage(ctx context.Context, companyID, employeeID string, req SetPercentageRequest) (AccountResponse, error) {
	pct, err := parsePercentage(req.Percentage)
	if err != nil {
		return AccountResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AccountResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	account, err := qtx.FindByEmployee(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountResponse{}, providentfunderrors.ErrAccountNotFound
		}
		return AccountResponse{}, err
	}

	account.Percentage = pct
	if err := qtx.Update(ctx, account); err != nil {
		return AccountResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AccountResponse{}, err
	}
	return mapToResponse(*account), nil
}

func parsePercentage(v string) (decimal.Decimal, error) {
	pct, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, providentfunderrors.ErrInvalidPercentage
	}
	if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, providentfunderrors.ErrInvalidPercentage
	}
	return pct, nil
}

func mapToResponse(a ProvidentFundAccount) AccountResponse {
	return AccountResponse{
		ID:               a.ID.String(),
		CompanyID:        a.CompanyID.String(),
		EmployeeID:       a.EmployeeID.String(),
		Percentage:       a.Percentage.String(),
		AccumulatedMinor: a.AccumulatedMinor,
	}
}
