package bonus

import (
	"context"
	"database/sql"
	"errors"

	bonuserrors "github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/bonus/errors"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/employee"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/money"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/period"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=bonus_service.go -destination=mock/bonus_service_mock.go -package=mock
type Service interface {
	CreateSetting(ctx context.Context, companyID string, req CreateSettingRequest) (SettingResponse, error)
	GetSettings(ctx context.Context, companyID string) ([]SettingResponse, error)

	// ApplyTrigger fires every setting bound to the trigger for the target
	// employees. Existing (employee, period, setting) applications are
	// reported as skipped, never reapplied.
	ApplyTrigger(ctx context.Context, companyID, trigger string, p period.Period, employeeIDs []string) ([]ApplyResult, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{db: db, repo: repo, employees: employees, logger: l.Named("bonus.service")}
}

func (s *service) CreateSetting(ctx context.Context, companyID string, req CreateSettingRequest) (SettingResponse, error) {
	setting := &BonusSetting{
		ID:        uuid.New(),
		CompanyID: uuid.MustParse(companyID),
		Name:      req.Name,
		Trigger:   req.Trigger,
		Rule:      req.Rule,
	}

	switch req.Rule {
	case RuleFixed:
		if req.AmountMinor < 0 {
			return SettingResponse{}, bonuserrors.ErrNegativeValue
		}
		setting.AmountMinor = req.AmountMinor
		setting.Percent = decimal.Zero
	case RulePercentOfBase:
		pct, err := decimal.NewFromString(req.Percent)
		if err != nil || pct.IsNegative() {
			return SettingResponse{}, bonuserrors.ErrNegativeValue
		}
		setting.Percent = pct
	default:
		return SettingResponse{}, bonuserrors.ErrInvalidRule
	}

	if err := s.repo.CreateSetting(ctx, setting); err != nil {
		return SettingResponse{}, err
	}
	return mapSettingToResponse(*setting), nil
}

func (s *service) GetSettings(ctx context.Context, companyID string) ([]SettingResponse, error) {
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

func (s *service) ApplyTrigger(ctx context.Context, companyID, trigger string, p period.Period, employeeIDs []string) ([]ApplyResult, error) {
	switch trigger {
	case TriggerEid, TriggerFestival, TriggerManual:
	default:
		return nil, bonuserrors.ErrInvalidTrigger
	}

	settings, err := s.repo.ListSettingsByTrigger(ctx, companyID, trigger)
	if err != nil {
		return nil, err
	}
	if len(settings) == 0 {
		return []ApplyResult{}, nil
	}

	targets, err := s.resolveTargets(ctx, companyID, employeeIDs)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	results := make([]ApplyResult, 0, len(targets)*len(settings))
	for _, target := range targets {
		for _, setting := range settings {
			result := ApplyResult{
				EmployeeID:  target.ID.String(),
				SettingID:   setting.ID.String(),
				SettingName: setting.Name,
			}

			exists, err := qtx.ApplicationExists(ctx, companyID, setting.ID.String(), target.ID.String(), p.Start)
			if err != nil {
				return nil, err
			}
			if exists {
				result.Skipped = true
				results = append(results, result)
				continue
			}

			amount := bonusAmount(setting, target.BaseSalary)
			app := &BonusApplication{
				ID:          uuid.New(),
				CompanyID:   setting.CompanyID,
				SettingID:   setting.ID,
				EmployeeID:  target.ID,
				PeriodStart: p.Start,
				PeriodEnd:   p.End,
				AmountMinor: amount,
				Status:      StatusApplied,
			}
			if err := qtx.CreateApplication(ctx, app); err != nil {
				// A concurrent trigger can win the insert between the
				// existence check and here. The unique key makes that a
				// skip, not a failure.
				if errors.Is(mapRepositoryError(err), bonuserrors.ErrDuplicateApplication) {
					result.Skipped = true
					results = append(results, result)
					continue
				}
				return nil, err
			}

			result.Applied = true
			result.AmountMinor = amount
			results = append(results, result)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("bonus trigger applied",
		zap.String("company_id", companyID),
		zap.String("trigger", trigger),
		zap.String("period", p.Key()),
		zap.Int("results", len(results)),
	)

	return results, nil
}

func (s *service) resolveTargets(ctx context.Context, companyID string, employeeIDs []string) ([]employee.EmployeeProfile, error) {
	if len(employeeIDs) == 0 {
		return s.employees.ListActiveByCompany(ctx, companyID)
	}

	targets := make([]employee.EmployeeProfile, 0, len(employeeIDs))
	for _, id := range employeeIDs {
		profile, err := s.employees.FindProfile(ctx, companyID, id)
		if err != nil {
			return nil, err
		}
		targets = append(targets, *profile)
	}
	return targets, nil
}

func bonusAmount(setting BonusSetting, baseSalaryMinor int64) int64 {
	switch setting.Rule {
	case RuleFixed:
		return setting.AmountMinor
	case RulePercentOfBase:
		return money.ToMinorBankers(money.Percent(money.FromMinor(baseSalaryMinor), setting.Percent))
	default:
		return 0
	}
}

func mapSettingToResponse(s BonusSetting) SettingResponse {
	resp := SettingResponse{
		ID:        s.ID.String(),
		CompanyID: s.CompanyID.String(),
		Name:      s.Name,
		Trigger:   s.Trigger,
		Rule:      s.Rule,
	}
	switch s.Rule {
	case RuleFixed:
		resp.AmountMinor = s.AmountMinor
	case RulePercentOfBase:
		resp.Percent = s.Percent.String()
	}
	return resp
}
