package salary

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/allowance"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/attendance"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/award"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/bonus"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/config"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/employee"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/leave"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/money"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/period"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/providentfund"
	salaryerrors "github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/salary/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	// Calculate recomputes the record from the period's frozen facts. It is
	// deterministic: running it twice without fact changes yields identical
	// fields. PAID rows reject recalculation, CANCELLED rows stay cancelled.
	Calculate(ctx context.Context, companyID, employeeID string, p period.Period) (RecordResponse, error)
	Cancel(ctx context.Context, companyID, employeeID string, p period.Period) (RecordResponse, error)
	GetByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, p period.Period) (RecordResponse, error)
	GetAllByPeriod(ctx context.Context, companyID string, p period.Period) ([]RecordResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	employees  employee.Repository
	attendance attendance.Repository
	leaves     leave.Repository
	allowances allowance.Service
	bonuses    bonus.Repository
	awards     award.Repository
	pf         providentfund.Repository

	evaluator *attendance.Evaluator
	rules     config.PayrollRules
	logger    *zap.Logger
}

type ServiceDeps struct {
	DB         *sql.DB
	Repo       Repository
	Employees  employee.Repository
	Attendance attendance.Repository
	Leaves     leave.Repository
	Allowances allowance.Service
	Bonuses    bonus.Repository
	Awards     award.Repository
	PF         providentfund.Repository
	Rules      config.PayrollRules
	Logger     *zap.Logger
}

func NewService(deps ServiceDeps) Service {
	l := deps.Logger
	if l == nil {
		l = zap.L()
	}
	return &service{
		db:         deps.DB,
		repo:       deps.Repo,
		employees:  deps.Employees,
		attendance: deps.Attendance,
		leaves:     deps.Leaves,
		allowances: deps.Allowances,
		bonuses:    deps.Bonuses,
		awards:     deps.Awards,
		pf:         deps.PF,
		evaluator:  attendance.NewEvaluator(deps.Rules.Attendance),
		rules:      deps.Rules,
		logger:     l.Named("salary.service"),
	}
}

func (s *service) Calculate(ctx context.Context, companyID, employeeID string, p period.Period) (RecordResponse, error) {
	existing, err := s.repo.FindByEmployeeAndPeriod(ctx, companyID, employeeID, p.Start)
	switch {
	case err == nil:
		if existing.Status == StatusPaid {
			return RecordResponse{}, salaryerrors.ErrAlreadyPaid
		}
		if existing.Status == StatusCancelled {
			return RecordResponse{}, salaryerrors.ErrRecordCancelled
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		existing = nil
	default:
		return RecordResponse{}, err
	}

	profile, err := s.employees.FindProfile(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, salaryerrors.ErrEmployeeNotFound
		}
		return RecordResponse{}, err
	}

	rec, err := s.compute(ctx, companyID, profile, p)
	if err != nil {
		return RecordResponse{}, err
	}
	if existing != nil {
		rec.ID = existing.ID
		// Frozen facts yield the same fields; keep the row and its
		// calculated_at untouched instead of rewriting it.
		if existing.Status == StatusCalculated && sameComputation(existing, rec) {
			return mapRecordToResponse(*existing), nil
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Upsert(ctx, rec); err != nil {
		return RecordResponse{}, err
	}

	if err := validateRecord(rec); err != nil {
		// Keep the draft behind for inspection; it is never payable.
		if cerr := tx.Commit(); cerr != nil {
			return RecordResponse{}, cerr
		}
		s.logger.Warn("salary draft failed validation",
			zap.String("company_id", companyID),
			zap.String("employee_id", employeeID),
			zap.String("period", p.Key()),
			zap.Int64("net_pay_minor", rec.NetPayMinor),
		)
		return RecordResponse{}, err
	}

	now := time.Now().UTC()
	if err := qtx.UpdateStatus(ctx, companyID, rec.ID.String(), StatusCalculated, now); err != nil {
		return RecordResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}
	rec.Status = StatusCalculated
	rec.CalculatedAt = &now

	s.logger.Info("salary calculated",
		zap.String("company_id", companyID),
		zap.String("employee_id", employeeID),
		zap.String("period", p.Key()),
		zap.Int64("net_pay_minor", rec.NetPayMinor),
	)

	return mapRecordToResponse(*rec), nil
}

// sameComputation reports whether two records carry identical computed fields
// for the same period.
func sameComputation(a, b *SalaryRecord) bool {
	return a.BaseProratedMinor == b.BaseProratedMinor &&
		a.AllowanceMinor == b.AllowanceMinor &&
		a.AttendanceDeductionMinor == b.AttendanceDeductionMinor &&
		a.PFMinor == b.PFMinor &&
		a.BonusMinor == b.BonusMinor &&
		a.AwardMinor == b.AwardMinor &&
		a.NetPayMinor == b.NetPayMinor
}

// validateRecord gates the DRAFT to CALCULATED transition. Deductions larger
// than earnings point at misconfigured rules (a PF percentage over 100, say),
// not at a payable salary.
func validateRecord(rec *SalaryRecord) error {
	if rec.NetPayMinor < 0 {
		return salaryerrors.ErrNegativeNetPay
	}
	return nil
}

// compute derives every monetary field from the period's facts. It reads but
// never writes.
func (s *service) compute(ctx context.Context, companyID string, profile *employee.EmployeeProfile, p period.Period) (*SalaryRecord, error) {
	employeeID := profile.ID.String()

	leaveReqs, err := s.leaves.ListApprovedByEmployeeAndRange(ctx, companyID, employeeID, p.Start, p.End)
	if err != nil {
		return nil, err
	}
	cover, err := leave.DaysCovered(leaveReqs, p, s.rules.LeaveTypes)
	if err != nil {
		return nil, err
	}

	rows, err := s.attendance.ListByEmployeeAndRange(ctx, companyID, employeeID, p.Start, p.End)
	if err != nil {
		return nil, err
	}

	dayCover := make(map[string]attendance.DayCover, len(cover))
	for key, cov := range cover {
		if cov == leave.CoveragePaid {
			dayCover[key] = attendance.CoverPaid
		} else {
			dayCover[key] = attendance.CoverUnpaid
		}
	}

	classifications, summary, err := s.evaluator.Evaluate(p, rows, dayCover)
	if err != nil {
		return nil, err
	}

	absentDays := 0
	for _, dc := range classifications {
		if dc.Class == attendance.ClassAbsent {
			absentDays++
		}
	}

	days := decimal.NewFromInt(int64(p.Days()))
	unpaidEquiv := leave.UnpaidDeductionEquivalent(leaveReqs, cover, s.rules.LeaveTypes)

	worked := days.Sub(decimal.NewFromInt(int64(absentDays))).Sub(unpaidEquiv)
	if worked.IsNegative() {
		worked = decimal.Zero
	}

	base := money.FromMinor(profile.BaseSalary)
	baseProrated := money.Prorate(base, worked, days)

	settings, err := s.allowances.SnapshotForEmployee(ctx, companyID, employeeID, p.End)
	if err != nil {
		return nil, err
	}

	pfPercent := profile.PFPercent
	if account, err := s.pf.FindByEmployee(ctx, companyID, employeeID); err == nil {
		pfPercent = account.Percentage
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	allowanceMinor, pfMinor := allowance.Compute(settings, pfPercent, baseProrated)

	dailyRate := base.Div(days)
	attendanceDeduction := money.ToMinorBankers(
		dailyRate.Mul(decimal.NewFromInt(int64(summary.DeductionDays))),
	)

	applications, err := s.bonuses.ListAppliedByEmployeeAndPeriod(ctx, companyID, employeeID, p.Start)
	if err != nil {
		return nil, err
	}
	grants, err := s.awards.ListPendingByEmployee(ctx, companyID, employeeID, p.Start)
	if err != nil {
		return nil, err
	}
	bonusMinor, awardMinor, _ := ResolveBonusAwards(applications, grants)

	baseProratedMinor := money.ToMinorBankers(baseProrated)
	net := baseProratedMinor + allowanceMinor + bonusMinor + awardMinor - attendanceDeduction - pfMinor

	return &SalaryRecord{
		ID:          uuid.New(),
		CompanyID:   profile.CompanyID,
		EmployeeID:  profile.ID,
		PeriodStart: p.Start,
		PeriodEnd:   p.End,

		BaseProratedMinor:        baseProratedMinor,
		AllowanceMinor:           allowanceMinor,
		AttendanceDeductionMinor: attendanceDeduction,
		PFMinor:                  pfMinor,
		BonusMinor:               bonusMinor,
		AwardMinor:               awardMinor,
		NetPayMinor:              net,

		Status: StatusDraft,
	}, nil
}

func (s *service) Cancel(ctx context.Context, companyID, employeeID string, p period.Period) (RecordResponse, error) {
	rec, err := s.repo.FindByEmployeeAndPeriod(ctx, companyID, employeeID, p.Start)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, salaryerrors.ErrRecordNotFound
		}
		return RecordResponse{}, err
	}

	if !canTransition(rec.Status, StatusCancelled) {
		if rec.Status == StatusPaid {
			return RecordResponse{}, salaryerrors.ErrAlreadyPaid
		}
		return RecordResponse{}, salaryerrors.ErrRecordCancelled
	}

	if err := s.repo.UpdateStatus(ctx, companyID, rec.ID.String(), StatusCancelled, time.Now().UTC()); err != nil {
		return RecordResponse{}, err
	}
	rec.Status = StatusCancelled
	return mapRecordToResponse(*rec), nil
}

func (s *service) GetByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, p period.Period) (RecordResponse, error) {
	rec, err := s.repo.FindByEmployeeAndPeriod(ctx, companyID, employeeID, p.Start)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, salaryerrors.ErrRecordNotFound
		}
		return RecordResponse{}, err
	}
	return mapRecordToResponse(*rec), nil
}

func (s *service) GetAllByPeriod(ctx context.Context, companyID string, p period.Period) ([]RecordResponse, error) {
	rows, err := s.repo.ListByCompanyAndPeriod(ctx, companyID, p.Start)
	if err != nil {
		return nil, err
	}
	res := make([]RecordResponse, len(rows))
	for i, r := range rows {
		res[i] = mapRecordToResponse(r)
	}
	return res, nil
}

func mapRecordToResponse(r SalaryRecord) RecordResponse {
	return RecordResponse{
		ID:          r.ID.String(),
		EmployeeID:  r.EmployeeID.String(),
		PeriodStart: r.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   r.PeriodEnd.Format("2006-01-02"),

		BaseProratedMinor:        r.BaseProratedMinor,
		AllowanceMinor:           r.AllowanceMinor,
		AttendanceDeductionMinor: r.AttendanceDeductionMinor,
		PFMinor:                  r.PFMinor,
		BonusMinor:               r.BonusMinor,
		AwardMinor:               r.AwardMinor,
		NetPayMinor:              r.NetPayMinor,

		Status:       r.Status,
		CalculatedAt: r.CalculatedAt,
		PaidAt:       r.PaidAt,
	}
}
