package salary_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/allowance"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/attendance"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/award"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/bonus"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/config"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/employee"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/leave"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/period"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/providentfund"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/salary"
	salaryerrors "github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/salary/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSalaryRepository struct {
	upsertFn        func(ctx context.Context, rec *salary.SalaryRecord) error
	findFn          func(ctx context.Context, companyID, employeeID string, periodStart time.Time) (*salary.SalaryRecord, error)
	findForUpdateFn func(ctx context.Context, companyID, employeeID string, periodStart time.Time) (*salary.SalaryRecord, error)
	listFn          func(ctx context.Context, companyID string, periodStart time.Time) ([]salary.SalaryRecord, error)
	updateStatusFn  func(ctx context.Context, companyID, id, status string, at time.Time) error
}

func (f *fakeSalaryRepository) WithTx(tx *sql.Tx) salary.Repository { return f }

func (f *fakeSalaryRepository) Upsert(ctx context.Context, rec *salary.SalaryRecord) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, rec)
	}
	return nil
}

func (f *fakeSalaryRepository) FindByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, periodStart time.Time) (*salary.SalaryRecord, error) {
	if f.findFn != nil {
		return f.findFn(ctx, companyID, employeeID, periodStart)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSalaryRepository) FindByEmployeeAndPeriodForUpdate(ctx context.Context, companyID, employeeID string, periodStart time.Time) (*salary.SalaryRecord, error) {
	if f.findForUpdateFn != nil {
		return f.findForUpdateFn(ctx, companyID, employeeID, periodStart)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSalaryRepository) ListByCompanyAndPeriod(ctx context.Context, companyID string, periodStart time.Time) ([]salary.SalaryRecord, error) {
	if f.listFn != nil {
		return f.listFn(ctx, companyID, periodStart)
	}
	return nil, nil
}

func (f *fakeSalaryRepository) UpdateStatus(ctx context.Context, companyID, id, status string, at time.Time) error {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, companyID, id, status, at)
	}
	return nil
}

type fakeEmployeeRepository struct {
	findProfileFn func(ctx context.Context, companyID, employeeID string) (*employee.EmployeeProfile, error)
	listActiveFn  func(ctx context.Context, companyID string) ([]employee.EmployeeProfile, error)
}

func (f *fakeEmployeeRepository) FindProfile(ctx context.Context, companyID, employeeID string) (*employee.EmployeeProfile, error) {
	if f.findProfileFn != nil {
		return f.findProfileFn(ctx, companyID, employeeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) ListActiveByCompany(ctx context.Context, companyID string) ([]employee.EmployeeProfile, error) {
	if f.listActiveFn != nil {
		return f.listActiveFn(ctx, companyID)
	}
	return nil, nil
}

type fakeAttendanceRepository struct {
	listByRangeFn func(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]attendance.Attendance, error)
}

func (f *fakeAttendanceRepository) WithTx(tx *sql.Tx) attendance.Repository { return f }
func (f *fakeAttendanceRepository) Create(ctx context.Context, a *attendance.Attendance) error {
	return nil
}
func (f *fakeAttendanceRepository) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeAttendanceRepository) ListByEmployeeAndRange(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	if f.listByRangeFn != nil {
		return f.listByRangeFn(ctx, companyID, employeeID, start, end)
	}
	return nil, nil
}
func (f *fakeAttendanceRepository) FindAllByCompany(ctx context.Context, companyID string) ([]attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAttendanceRepository) Update(ctx context.Context, a *attendance.Attendance) error {
	return nil
}

type fakeLeaveRepository struct {
	listApprovedFn func(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]leave.LeaveRequest, error)
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository { return f }
func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.LeaveRequest) error { return nil }
func (f *fakeLeaveRepository) FindAllByCompany(ctx context.Context, companyID string) ([]leave.LeaveRequest, error) {
	return nil, nil
}
func (f *fakeLeaveRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*leave.LeaveRequest, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeLeaveRepository) ListApprovedByEmployeeAndRange(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	if f.listApprovedFn != nil {
		return f.listApprovedFn(ctx, companyID, employeeID, start, end)
	}
	return nil, nil
}
func (f *fakeLeaveRepository) Update(ctx context.Context, l *leave.LeaveRequest) error { return nil }
func (f *fakeLeaveRepository) HasOverlappingApproved(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	return false, nil
}
func (f *fakeLeaveRepository) FindBalance(ctx context.Context, companyID, employeeID, leaveType string, year int) (*leave.LeaveBalance, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeLeaveRepository) ListBalances(ctx context.Context, companyID, employeeID string, year int) ([]leave.LeaveBalance, error) {
	return nil, nil
}
func (f *fakeLeaveRepository) SaveBalance(ctx context.Context, b *leave.LeaveBalance) error {
	return nil
}

type fakeAllowanceService struct {
	snapshotFn func(ctx context.Context, companyID, employeeID string, asOf time.Time) ([]allowance.AllowanceSetting, error)
}

func (f *fakeAllowanceService) CreateSetting(ctx context.Context, companyID string, req allowance.CreateSettingRequest) (allowance.SettingResponse, error) {
	return allowance.SettingResponse{}, nil
}
func (f *fakeAllowanceService) GetAll(ctx context.Context, companyID string) ([]allowance.SettingResponse, error) {
	return nil, nil
}
func (f *fakeAllowanceService) DeleteSetting(ctx context.Context, companyID, id string) error {
	return nil
}
func (f *fakeAllowanceService) AssignEmployee(ctx context.Context, companyID string, req allowance.AssignEmployeeRequest) error {
	return nil
}
func (f *fakeAllowanceService) UnassignEmployee(ctx context.Context, companyID, employeeID, settingName string) error {
	return nil
}
func (f *fakeAllowanceService) SnapshotForEmployee(ctx context.Context, companyID, employeeID string, asOf time.Time) ([]allowance.AllowanceSetting, error) {
	if f.snapshotFn != nil {
		return f.snapshotFn(ctx, companyID, employeeID, asOf)
	}
	return nil, nil
}

type fakeBonusRepository struct {
	listAppliedFn func(ctx context.Context, companyID, employeeID string, periodStart time.Time) ([]bonus.BonusApplication, error)
	markPaidFn    func(ctx context.Context, companyID, employeeID string, periodStart time.Time) error
}

func (f *fakeBonusRepository) WithTx(tx *sql.Tx) bonus.Repository { return f }
func (f *fakeBonusRepository) CreateSetting(ctx context.Context, s *bonus.BonusSetting) error {
	return nil
}
func (f *fakeBonusRepository) FindSetting(ctx context.Context, companyID, id string) (*bonus.BonusSetting, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeBonusRepository) ListSettings(ctx context.Context, companyID string) ([]bonus.BonusSetting, error) {
	return nil, nil
}
func (f *fakeBonusRepository) ListSettingsByTrigger(ctx context.Context, companyID, trigger string) ([]bonus.BonusSetting, error) {
	return nil, nil
}
func (f *fakeBonusRepository) CreateApplication(ctx context.Context, a *bonus.BonusApplication) error {
	return nil
}
func (f *fakeBonusRepository) ApplicationExists(ctx context.Context, companyID, settingID, employeeID string, periodStart time.Time) (bool, error) {
	return false, nil
}
func (f *fakeBonusRepository) ListAppliedByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, periodStart time.Time) ([]bonus.BonusApplication, error) {
	if f.listAppliedFn != nil {
		return f.listAppliedFn(ctx, companyID, employeeID, periodStart)
	}
	return nil, nil
}
func (f *fakeBonusRepository) MarkPaidByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, periodStart time.Time) error {
	if f.markPaidFn != nil {
		return f.markPaidFn(ctx, companyID, employeeID, periodStart)
	}
	return nil
}

type fakeAwardRepository struct {
	listPendingFn  func(ctx context.Context, companyID, employeeID string, periodStart time.Time) ([]award.EmployeeAward, error)
	listPendingIDs func(ctx context.Context, companyID string, periodStart time.Time) ([]string, error)
	markPaidFn     func(ctx context.Context, companyID, employeeID string, periodStart, paidAt time.Time) error
}

func (f *fakeAwardRepository) WithTx(tx *sql.Tx) award.Repository { return f }
func (f *fakeAwardRepository) CreateAward(ctx context.Context, a *award.Award) error { return nil }
func (f *fakeAwardRepository) FindAward(ctx context.Context, companyID, id string) (*award.Award, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeAwardRepository) ListAwards(ctx context.Context, companyID string) ([]award.Award, error) {
	return nil, nil
}
func (f *fakeAwardRepository) CreateGrant(ctx context.Context, g *award.EmployeeAward) error {
	return nil
}
func (f *fakeAwardRepository) FindGrant(ctx context.Context, companyID, id string) (*award.EmployeeAward, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeAwardRepository) ListGrants(ctx context.Context, companyID string) ([]award.EmployeeAward, error) {
	return nil, nil
}
func (f *fakeAwardRepository) ListPendingByEmployee(ctx context.Context, companyID, employeeID string, periodStart time.Time) ([]award.EmployeeAward, error) {
	if f.listPendingFn != nil {
		return f.listPendingFn(ctx, companyID, employeeID, periodStart)
	}
	return nil, nil
}
func (f *fakeAwardRepository) ListEmployeesWithPending(ctx context.Context, companyID string, periodStart time.Time) ([]string, error) {
	if f.listPendingIDs != nil {
		return f.listPendingIDs(ctx, companyID, periodStart)
	}
	return nil, nil
}
func (f *fakeAwardRepository) UpdateGrantStatus(ctx context.Context, companyID, id, status string) error {
	return nil
}
func (f *fakeAwardRepository) MarkPaidByEmployee(ctx context.Context, companyID, employeeID string, periodStart, paidAt time.Time) error {
	if f.markPaidFn != nil {
		return f.markPaidFn(ctx, companyID, employeeID, periodStart, paidAt)
	}
	return nil
}

type fakePFRepository struct {
	findFn   func(ctx context.Context, companyID, employeeID string) (*providentfund.ProvidentFundAccount, error)
	accrueFn func(ctx context.Context, companyID, employeeID string, amountMinor int64) error
}

func (f *fakePFRepository) WithTx(tx *sql.Tx) providentfund.Repository { return f }
func (f *fakePFRepository) Create(ctx context.Context, a *providentfund.ProvidentFundAccount) error {
	return nil
}
func (f *fakePFRepository) FindByEmployee(ctx context.Context, companyID, employeeID string) (*providentfund.ProvidentFundAccount, error) {
	if f.findFn != nil {
		return f.findFn(ctx, companyID, employeeID)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakePFRepository) ListByCompany(ctx context.Context, companyID string) ([]providentfund.ProvidentFundAccount, error) {
	return nil, nil
}
func (f *fakePFRepository) Update(ctx context.Context, a *providentfund.ProvidentFundAccount) error {
	return nil
}
func (f *fakePFRepository) Accrue(ctx context.Context, companyID, employeeID string, amountMinor int64) error {
	if f.accrueFn != nil {
		return f.accrueFn(ctx, companyID, employeeID, amountMinor)
	}
	return nil
}

type salaryServiceDeps struct {
	db         *sql.DB
	sqlMock    sqlmock.Sqlmock
	service    salary.Service
	repo       *fakeSalaryRepository
	employees  *fakeEmployeeRepository
	attendance *fakeAttendanceRepository
	leaves     *fakeLeaveRepository
	allowances *fakeAllowanceService
	bonuses    *fakeBonusRepository
	awards     *fakeAwardRepository
	pf         *fakePFRepository
}

func setupSalaryServiceTest(t *testing.T) *salaryServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	deps := &salaryServiceDeps{
		db:         db,
		sqlMock:    sqlMock,
		repo:       &fakeSalaryRepository{},
		employees:  &fakeEmployeeRepository{},
		attendance: &fakeAttendanceRepository{},
		leaves:     &fakeLeaveRepository{},
		allowances: &fakeAllowanceService{},
		bonuses:    &fakeBonusRepository{},
		awards:     &fakeAwardRepository{},
		pf:         &fakePFRepository{},
	}
	deps.service = salary.NewService(salary.ServiceDeps{
		DB:         db,
		Repo:       deps.repo,
		Employees:  deps.employees,
		Attendance: deps.attendance,
		Leaves:     deps.leaves,
		Allowances: deps.allowances,
		Bonuses:    deps.bonuses,
		Awards:     deps.awards,
		PF:         deps.pf,
		Rules:      config.PayrollRules{Attendance: testAttendanceRules(), LeaveTypes: config.DefaultLeaveTypes()},
	})
	return deps
}

func testAttendanceRules() config.AttendanceRules {
	return config.AttendanceRules{
		WorkdayStart:             "09:00",
		WorkdayEnd:               "17:00",
		GraceMinutes:             15,
		LateDaysPerDeduction:     3,
		EarlyOutDaysPerDeduction: 3,
		PenaltyDays:              1,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

// presentRows produces a full clock-in/out day for every period date not in
// skip.
func presentRows(p period.Period, skip map[string]bool) []attendance.Attendance {
	rows := make([]attendance.Attendance, 0, p.Days())
	for _, d := range p.Dates() {
		if skip[d.Format("2006-01-02")] {
			continue
		}
		out := time.Date(d.Year(), d.Month(), d.Day(), 17, 0, 0, 0, time.UTC)
		rows = append(rows, attendance.Attendance{
			AttendanceDate: d,
			ClockIn:        time.Date(d.Year(), d.Month(), d.Day(), 9, 0, 0, 0, time.UTC),
			ClockOut:       &out,
			Source:         attendance.SourceSystem,
		})
	}
	return rows
}

func TestSalaryService_Calculate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New()
	p, err := period.ParseMonth("2026-06")
	assert.NoError(t, err)

	profile := &employee.EmployeeProfile{
		ID:         employeeID,
		CompanyID:  uuid.MustParse(companyID),
		BaseSalary: 3_000_000,
		PFPercent:  decimal.NewFromInt(5),
		Status:     employee.StatusActive,
	}

	setupScenario := func(deps *salaryServiceDeps) {
		deps.employees.findProfileFn = func(ctx context.Context, cid, eid string) (*employee.EmployeeProfile, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, employeeID.String(), eid)
			return profile, nil
		}
		deps.leaves.listApprovedFn = func(ctx context.Context, cid, eid string, start, end time.Time) ([]leave.LeaveRequest, error) {
			return []leave.LeaveRequest{
				{
					LeaveType: "UNPAID",
					StartDate: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
					EndDate:   time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC),
					Status:    leave.StatusApproved,
				},
			}, nil
		}
		deps.attendance.listByRangeFn = func(ctx context.Context, cid, eid string, start, end time.Time) ([]attendance.Attendance, error) {
			return presentRows(p, map[string]bool{"2026-06-10": true, "2026-06-11": true}), nil
		}
		deps.allowances.snapshotFn = func(ctx context.Context, cid, eid string, asOf time.Time) ([]allowance.AllowanceSetting, error) {
			return []allowance.AllowanceSetting{
				{Name: "house-rent", Kind: allowance.KindPercentOfBase, Percent: decimal.NewFromInt(10)},
			}, nil
		}
	}

	t.Run("reference scenario", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()
		setupScenario(deps)

		expectTx(t, deps.sqlMock, true)

		var saved *salary.SalaryRecord
		deps.repo.upsertFn = func(ctx context.Context, rec *salary.SalaryRecord) error {
			saved = rec
			return nil
		}
		var promotedTo string
		deps.repo.updateStatusFn = func(ctx context.Context, cid, id, status string, at time.Time) error {
			promotedTo = status
			return nil
		}

		resp, err := deps.service.Calculate(ctx, companyID, employeeID.String(), p)

		assert.NoError(t, err)
		assert.Equal(t, int64(2_800_000), resp.BaseProratedMinor)
		assert.Equal(t, int64(280_000), resp.AllowanceMinor)
		assert.Equal(t, int64(140_000), resp.PFMinor)
		assert.Equal(t, int64(0), resp.AttendanceDeductionMinor)
		assert.Equal(t, int64(2_940_000), resp.NetPayMinor)
		assert.Equal(t, salary.StatusCalculated, resp.Status)
		assert.NotNil(t, resp.CalculatedAt)

		// persisted as a draft first, promoted inside the same transaction
		assert.NotNil(t, saved)
		assert.Equal(t, salary.StatusDraft, saved.Status)
		assert.Nil(t, saved.CalculatedAt)
		assert.Equal(t, salary.StatusCalculated, promotedTo)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("deterministic across recalculation", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()
		setupScenario(deps)

		expectTx(t, deps.sqlMock, true)

		first, err := deps.service.Calculate(ctx, companyID, employeeID.String(), p)
		assert.NoError(t, err)

		calculatedAt := time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC)
		firstRecord := salary.SalaryRecord{
			ID:          uuid.MustParse(first.ID),
			CompanyID:   uuid.MustParse(companyID),
			EmployeeID:  employeeID,
			PeriodStart: p.Start,

			BaseProratedMinor:        first.BaseProratedMinor,
			AllowanceMinor:           first.AllowanceMinor,
			AttendanceDeductionMinor: first.AttendanceDeductionMinor,
			PFMinor:                  first.PFMinor,
			BonusMinor:               first.BonusMinor,
			AwardMinor:               first.AwardMinor,
			NetPayMinor:              first.NetPayMinor,

			Status:       salary.StatusCalculated,
			CalculatedAt: &calculatedAt,
		}
		deps.repo.findFn = func(ctx context.Context, cid, eid string, ps time.Time) (*salary.SalaryRecord, error) {
			return &firstRecord, nil
		}

		second, err := deps.service.Calculate(ctx, companyID, employeeID.String(), p)
		assert.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.BaseProratedMinor, second.BaseProratedMinor)
		assert.Equal(t, first.AllowanceMinor, second.AllowanceMinor)
		assert.Equal(t, first.AttendanceDeductionMinor, second.AttendanceDeductionMinor)
		assert.Equal(t, first.PFMinor, second.PFMinor)
		assert.Equal(t, first.BonusMinor, second.BonusMinor)
		assert.Equal(t, first.AwardMinor, second.AwardMinor)
		assert.Equal(t, first.NetPayMinor, second.NetPayMinor)

		// an unchanged recalculation keeps the stored row and its timestamp;
		// only the first call opened a transaction
		assert.Equal(t, &calculatedAt, second.CalculatedAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative net pay stays draft", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()
		setupScenario(deps)

		heavyPF := *profile
		heavyPF.PFPercent = decimal.NewFromInt(150)
		deps.employees.findProfileFn = func(ctx context.Context, cid, eid string) (*employee.EmployeeProfile, error) {
			return &heavyPF, nil
		}

		// draft committed for inspection even though validation fails
		expectTx(t, deps.sqlMock, true)

		var saved *salary.SalaryRecord
		deps.repo.upsertFn = func(ctx context.Context, rec *salary.SalaryRecord) error {
			saved = rec
			return nil
		}
		deps.repo.updateStatusFn = func(ctx context.Context, cid, id, status string, at time.Time) error {
			t.Fatalf("unexpected status transition to %s", status)
			return nil
		}

		_, err := deps.service.Calculate(ctx, companyID, employeeID.String(), p)

		assert.ErrorIs(t, err, salaryerrors.ErrNegativeNetPay)
		assert.NotNil(t, saved)
		assert.Equal(t, salary.StatusDraft, saved.Status)
		assert.Negative(t, saved.NetPayMinor)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("award grants scoped to the period", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()
		setupScenario(deps)

		march, err := period.ParseMonth("2026-03")
		assert.NoError(t, err)

		grants := []award.EmployeeAward{
			{PeriodStart: march.Start, AmountMinor: 75_000, Status: award.StatusPending},
			{PeriodStart: p.Start, AmountMinor: 50_000, Status: award.StatusPending},
		}
		deps.awards.listPendingFn = func(ctx context.Context, cid, eid string, ps time.Time) ([]award.EmployeeAward, error) {
			assert.Equal(t, p.Start, ps)
			var scoped []award.EmployeeAward
			for _, g := range grants {
				if g.PeriodStart.Equal(ps) {
					scoped = append(scoped, g)
				}
			}
			return scoped, nil
		}

		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.Calculate(ctx, companyID, employeeID.String(), p)

		assert.NoError(t, err)
		// only the June grant counts; the March grant waits for its own period
		assert.Equal(t, int64(50_000), resp.AwardMinor)
		assert.Equal(t, int64(2_990_000), resp.NetPayMinor)
	})

	t.Run("attendance deduction applied", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()

		deps.employees.findProfileFn = func(ctx context.Context, cid, eid string) (*employee.EmployeeProfile, error) {
			return profile, nil
		}
		deps.attendance.listByRangeFn = func(ctx context.Context, cid, eid string, start, end time.Time) ([]attendance.Attendance, error) {
			rows := presentRows(p, nil)
			// three late days cross the deduction threshold
			for i := 0; i < 3; i++ {
				rows[i].ClockIn = rows[i].ClockIn.Add(30 * time.Minute)
			}
			return rows, nil
		}

		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.Calculate(ctx, companyID, employeeID.String(), p)

		assert.NoError(t, err)
		// one day of pay at 3,000,000 / 30
		assert.Equal(t, int64(100_000), resp.AttendanceDeductionMinor)
		assert.Equal(t, int64(3_000_000), resp.BaseProratedMinor)
	})

	t.Run("paid record rejects recalculation", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()

		deps.repo.findFn = func(ctx context.Context, cid, eid string, ps time.Time) (*salary.SalaryRecord, error) {
			return &salary.SalaryRecord{Status: salary.StatusPaid}, nil
		}

		_, err := deps.service.Calculate(ctx, companyID, employeeID.String(), p)

		assert.ErrorIs(t, err, salaryerrors.ErrAlreadyPaid)
	})

	t.Run("cancelled record stays cancelled", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()

		deps.repo.findFn = func(ctx context.Context, cid, eid string, ps time.Time) (*salary.SalaryRecord, error) {
			return &salary.SalaryRecord{Status: salary.StatusCancelled}, nil
		}

		_, err := deps.service.Calculate(ctx, companyID, employeeID.String(), p)

		assert.ErrorIs(t, err, salaryerrors.ErrRecordCancelled)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Calculate(ctx, companyID, employeeID.String(), p)

		assert.ErrorIs(t, err, salaryerrors.ErrEmployeeNotFound)
	})
}

func TestSalaryService_Cancel(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	p, err := period.ParseMonth("2026-06")
	assert.NoError(t, err)

	t.Run("calculated record cancels", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()

		deps.repo.findFn = func(ctx context.Context, cid, eid string, ps time.Time) (*salary.SalaryRecord, error) {
			return &salary.SalaryRecord{ID: uuid.New(), Status: salary.StatusCalculated}, nil
		}
		var updatedTo string
		deps.repo.updateStatusFn = func(ctx context.Context, cid, id, status string, at time.Time) error {
			updatedTo = status
			return nil
		}

		resp, err := deps.service.Cancel(ctx, companyID, employeeID, p)

		assert.NoError(t, err)
		assert.Equal(t, salary.StatusCancelled, resp.Status)
		assert.Equal(t, salary.StatusCancelled, updatedTo)
	})

	t.Run("paid record cannot cancel", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()

		deps.repo.findFn = func(ctx context.Context, cid, eid string, ps time.Time) (*salary.SalaryRecord, error) {
			return &salary.SalaryRecord{Status: salary.StatusPaid}, nil
		}

		_, err := deps.service.Cancel(ctx, companyID, employeeID, p)

		assert.ErrorIs(t, err, salaryerrors.ErrAlreadyPaid)
	})
}
