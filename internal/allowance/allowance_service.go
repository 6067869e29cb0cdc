package allowance

import (
	"context"
	"database/sql"
	"time"

	allowanceerrors "github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/allowance/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=allowance_service.go -destination=mock/allowance_service_mock.go -package=mock
type Service interface {
	CreateSetting(ctx context.Context, companyID string, req CreateSettingRequest) (SettingResponse, error)
	GetAll(ctx context.Context, companyID string) ([]SettingResponse, error)
	DeleteSetting(ctx context.Context, companyID, id string) error
	AssignEmployee(ctx context.Context, companyID string, req AssignEmployeeRequest) error
	UnassignEmployee(ctx context.Context, companyID, employeeID, settingName string) error

	// SnapshotForEmployee is the versioned settings view the salary
	// aggregator computes against.
	SnapshotForEmployee(ctx context.Context, companyID, employeeID string, asOf time.Time) ([]AllowanceSetting, error)
}

type service struct {
	db   *sql.DB
	repo Repository
	sf   *singleflight.Group
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo, sf: &singleflight.Group{}}
}

func (s *service) CreateSetting(ctx context.Context, companyID string, req CreateSettingRequest) (SettingResponse, error) {
	effectiveFrom, err := time.Parse("2006-01-02", req.EffectiveFrom)
	if err != nil {
		return SettingResponse{}, allowanceerrors.ErrInvalidEffectiveFrom
	}

	setting := &AllowanceSetting{
		ID:            uuid.New(),
		CompanyID:     uuid.MustParse(companyID),
		Name:          req.Name,
		Kind:          req.Kind,
		EffectiveFrom: effectiveFrom,
	}

	switch req.Kind {
	case KindFixed:
		if req.AmountMinor < 0 {
			return SettingResponse{}, allowanceerrors.ErrNegativeValue
		}
		setting.AmountMinor = req.AmountMinor
		setting.Percent = decimal.Zero
	case KindPercentOfBase:
		pct, err := decimal.NewFromString(req.Percent)
		if err != nil || pct.IsNegative() {
			return SettingResponse{}, allowanceerrors.ErrNegativeValue
		}
		setting.Percent = pct
	default:
		return SettingResponse{}, allowanceerrors.ErrInvalidKind
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SettingResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreateSetting(ctx, setting); err != nil {
		return SettingResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return SettingResponse{}, err
	}
	return mapSettingToResponse(*setting), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]SettingResponse, error) {
	rows, err := s.repo.ListSettings(ctx, companyID)
	if err != nil {
		return nil, err
	}
	res := make([]SettingResponse, len(rows))
	for i, r := range rows {
		res[i] = mapSettingToResponse(r)
	}
	return res, nil
}

func (s *service) DeleteSetting(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).DeleteSetting(ctx, companyID, id); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) AssignEmployee(ctx context.Context, companyID string, req AssignEmployeeRequest) error {
	link := &EmployeeAllowance{
		ID:          uuid.New(),
		CompanyID:   uuid.MustParse(companyID),
		EmployeeID:  uuid.MustParse(req.EmployeeID),
		SettingName: req.SettingName,
	}
	return s.repo.AssignEmployee(ctx, link)
}

func (s *service) UnassignEmployee(ctx context.Context, companyID, employeeID, settingName string) error {
	return s.repo.UnassignEmployee(ctx, companyID, employeeID, settingName)
}

func (s *service) SnapshotForEmployee(ctx context.Context, companyID, employeeID string, asOf time.Time) ([]AllowanceSetting, error) {
	// Bulk runs hammer the same company snapshot; collapse concurrent reads.
	key := companyID + ":" + asOf.Format("2006-01-02")
	v, err, _ := s.sf.Do(key, func() (any, error) {
		return s.repo.ListEffectiveSettings(ctx, companyID, asOf)
	})
	if err != nil {
		return nil, err
	}
	effective := v.([]AllowanceSetting)

	links, err := s.repo.ListEmployeeLinks(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return effective, nil
	}

	allowed := make(map[string]bool, len(links))
	for _, link := range links {
		allowed[link.SettingName] = true
	}

	filtered := make([]AllowanceSetting, 0, len(effective))
	for _, setting := range effective {
		if allowed[setting.Name] {
			filtered = append(filtered, setting)
		}
	}
	return filtered, nil
}

func mapSettingToResponse(s AllowanceSetting) SettingResponse {
	resp := SettingResponse{
		ID:            s.ID.String(),
		CompanyID:     s.CompanyID.String(),
		Name:          s.Name,
		Kind:          s.Kind,
		EffectiveFrom: s.EffectiveFrom.Format("2006-01-02"),
	}
	switch s.Kind {
	case KindFixed:
		resp.AmountMinor = s.AmountMinor
	case KindPercentOfBase:
		resp.Percent = s.Percent.String()
	}
	return resp
}
