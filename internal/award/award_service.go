package award

import (
	"context"
	"errors"
	"time"

	awarderrors "github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/award/errors"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/period"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=award_service.go -destination=mock/award_service_mock.go -package=mock
type Service interface {
	CreateAward(ctx context.Context, companyID string, req CreateAwardRequest) (AwardResponse, error)
	GetAwards(ctx context.Context, companyID string) ([]AwardResponse, error)

	Grant(ctx context.Context, companyID string, req GrantRequest) (GrantResponse, error)
	GetGrants(ctx context.Context, companyID string) ([]GrantResponse, error)
	UpdateStatus(ctx context.Context, companyID, grantID string, req UpdateStatusRequest) (GrantResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, logger: l.Named("award.service")}
}

func (s *service) CreateAward(ctx context.Context, companyID string, req CreateAwardRequest) (AwardResponse, error) {
	if req.AmountMinor < 0 {
		return AwardResponse{}, awarderrors.ErrNegativeAmount
	}

	a := &Award{
		ID:          uuid.New(),
		CompanyID:   uuid.MustParse(companyID),
		Name:        req.Name,
		Description: req.Description,
		AmountMinor: req.AmountMinor,
	}
	if err := s.repo.CreateAward(ctx, a); err != nil {
		return AwardResponse{}, err
	}
	return mapAwardToResponse(*a), nil
}

func (s *service) GetAwards(ctx context.Context, companyID string) ([]AwardResponse, error) {
	rows, err := s.repo.ListAwards(ctx, companyID)
	if err != nil {
		return nil, err
	}
	res := make([]AwardResponse, len(rows))
	for i, r := range rows {
		res[i] = mapAwardToResponse(r)
	}
	return res, nil
}

func (s *service) Grant(ctx context.Context, companyID string, req GrantRequest) (GrantResponse, error) {
	a, err := s.repo.FindAward(ctx, companyID, req.AwardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GrantResponse{}, awarderrors.ErrAwardNotFound
		}
		return GrantResponse{}, err
	}

	p, err := period.ParseMonth(req.Month)
	if err != nil {
		return GrantResponse{}, err
	}

	amount := a.AmountMinor
	if req.AmountMinor > 0 {
		amount = req.AmountMinor
	}

	g := &EmployeeAward{
		ID:          uuid.New(),
		CompanyID:   a.CompanyID,
		AwardID:     a.ID,
		EmployeeID:  uuid.MustParse(req.EmployeeID),
		PeriodStart: p.Start,
		PeriodEnd:   p.End,
		AmountMinor: amount,
		Status:      StatusPending,
		GrantedAt:   time.Now().UTC(),
	}
	if err := s.repo.CreateGrant(ctx, g); err != nil {
		return GrantResponse{}, err
	}

	s.logger.Info("award granted",
		zap.String("company_id", companyID),
		zap.String("award_id", req.AwardID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("period", p.Key()),
		zap.Int64("amount_minor", amount),
	)

	return mapGrantToResponse(*g), nil
}

func (s *service) GetGrants(ctx context.Context, companyID string) ([]GrantResponse, error) {
	rows, err := s.repo.ListGrants(ctx, companyID)
	if err != nil {
		return nil, err
	}
	res := make([]GrantResponse, len(rows))
	for i, r := range rows {
		res[i] = mapGrantToResponse(r)
	}
	return res, nil
}

func (s *service) UpdateStatus(ctx context.Context, companyID, grantID string, req UpdateStatusRequest) (GrantResponse, error) {
	g, err := s.repo.FindGrant(ctx, companyID, grantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GrantResponse{}, awarderrors.ErrGrantNotFound
		}
		return GrantResponse{}, err
	}
	if g.Status != StatusPending {
		return GrantResponse{}, awarderrors.ErrGrantNotPending
	}

	if err := s.repo.UpdateGrantStatus(ctx, companyID, grantID, req.Status); err != nil {
		return GrantResponse{}, err
	}
	g.Status = req.Status
	return mapGrantToResponse(*g), nil
}

func mapAwardToResponse(a Award) AwardResponse {
	return AwardResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Description: a.Description,
		AmountMinor: a.AmountMinor,
	}
}

func mapGrantToResponse(g EmployeeAward) GrantResponse {
	return GrantResponse{
		ID:          g.ID.String(),
		AwardID:     g.AwardID.String(),
		EmployeeID:  g.EmployeeID.String(),
		PeriodStart: g.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   g.PeriodEnd.Format("2006-01-02"),
		AmountMinor: g.AmountMinor,
		Status:      g.Status,
		GrantedAt:   g.GrantedAt.Format("2006-01-02"),
		PaidAt:      g.PaidAt,
	}
}
