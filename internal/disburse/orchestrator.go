package disburse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/award"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/bonus"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/config"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/events"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/ledger"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/messaging/kafka"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/period"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/providentfund"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/salary"
	salaryerrors "github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/salary/errors"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

//go:generate mockgen -source=orchestrator.go -destination=mock/orchestrator_mock.go -package=mock
type Orchestrator interface {
	// Pay disburses one CALCULATED record: at most once, ever, per
	// (company, employee, period).
	Pay(ctx context.Context, companyID, employeeID string, p period.Period) (Receipt, error)
	BulkPay(ctx context.Context, companyID string, employeeIDs []string, p period.Period) []Result
	ProcessAwardPayments(ctx context.Context, companyID string, p period.Period) ([]Result, error)
	BulkAction(ctx context.Context, companyID, action string, employeeIDs []string, p period.Period) ([]Result, error)
}

type orchestrator struct {
	db      *sql.DB
	rdb     *redis.Client
	records salary.Repository
	salary  salary.Service
	bonuses bonus.Repository
	awards  award.Repository
	pf      providentfund.Repository
	outbox  kafka.OutboxRepository
	poster  ledger.Poster

	rules  config.DisburseRules
	logger *zap.Logger
}

type OrchestratorDeps struct {
	DB      *sql.DB
	Redis   *redis.Client
	Records salary.Repository
	Salary  salary.Service
	Bonuses bonus.Repository
	Awards  award.Repository
	PF      providentfund.Repository
	Outbox  kafka.OutboxRepository
	Poster  ledger.Poster
	Rules   config.DisburseRules
	Logger  *zap.Logger
}

func NewOrchestrator(deps OrchestratorDeps) Orchestrator {
	l := deps.Logger
	if l == nil {
		l = zap.L()
	}
	return &orchestrator{
		db:      deps.DB,
		rdb:     deps.Redis,
		records: deps.Records,
		salary:  deps.Salary,
		bonuses: deps.Bonuses,
		awards:  deps.Awards,
		pf:      deps.PF,
		outbox:  deps.Outbox,
		poster:  deps.Poster,
		rules:   deps.Rules,
		logger:  l.Named("disburse.orchestrator"),
	}
}

func payLockKey(companyID, employeeID string, p period.Period) string {
	return fmt.Sprintf("paylock:%s:%s:%s", companyID, employeeID, p.Key())
}

func (o *orchestrator) Pay(ctx context.Context, companyID, employeeID string, p period.Period) (Receipt, error) {
	lockKey := payLockKey(companyID, employeeID, p)
	locked, err := o.rdb.SetNX(ctx, lockKey, "1", o.rules.PayLockTTL).Result()
	if err != nil {
		return Receipt{}, err
	}
	if !locked {
		return Receipt{}, salaryerrors.ErrConcurrentPaymentInProgress
	}
	defer o.rdb.Del(context.WithoutCancel(ctx), lockKey)

	rec, err := o.records.FindByEmployeeAndPeriodForUpdate(ctx, companyID, employeeID, p.Start)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Receipt{}, salaryerrors.ErrRecordNotFound
		}
		return Receipt{}, err
	}

	switch rec.Status {
	case salary.StatusCalculated:
	case salary.StatusPaid:
		return Receipt{}, salaryerrors.ErrAlreadyPaid
	default:
		return Receipt{}, salaryerrors.ErrRecordNotCalculated
	}

	postingID, err := o.postWithRetry(ctx, companyID, employeeID, p, rec.NetPayMinor)
	if err != nil {
		return Receipt{}, apperror.WrapAs(salaryerrors.ErrLedgerPostingFailed, err)
	}

	paidAt := time.Now().UTC()

	tx, err := o.db.BeginTx(ctx, nil)
	if err != nil {
		return Receipt{}, apperror.WrapAs(salaryerrors.ErrReconciliationRequired, err)
	}
	defer tx.Rollback()

	if err := o.finalize(ctx, tx, rec, p, postingID, paidAt); err != nil {
		return Receipt{}, apperror.WrapAs(salaryerrors.ErrReconciliationRequired, err)
	}

	if err := tx.Commit(); err != nil {
		// The ledger posting landed but our state did not. Surfacing
		// forces a human to reconcile; re-posting is safe but flipping
		// the record blindly is not.
		o.logger.Error("commit failed after ledger post",
			zap.String("posting_id", postingID),
			zap.String("record_id", rec.ID.String()),
			zap.Error(err),
		)
		return Receipt{}, apperror.WrapAs(salaryerrors.ErrReconciliationRequired, err)
	}

	o.logger.Info("salary paid",
		zap.String("company_id", companyID),
		zap.String("employee_id", employeeID),
		zap.String("period", p.Key()),
		zap.String("posting_id", postingID),
		zap.Int64("net_pay_minor", rec.NetPayMinor),
	)

	return Receipt{
		RecordID:    rec.ID.String(),
		EmployeeID:  employeeID,
		PostingID:   postingID,
		NetPayMinor: rec.NetPayMinor,
		PaidAt:      paidAt,
	}, nil
}

// finalize applies every paid-state mutation inside the transaction: bonus
// applications and award grants flip to PAID, the PF account accrues, the
// record reaches PAID, and the payment-completed event joins the outbox.
func (o *orchestrator) finalize(ctx context.Context, tx *sql.Tx, rec *salary.SalaryRecord, p period.Period, postingID string, paidAt time.Time) error {
	companyID := rec.CompanyID.String()
	employeeID := rec.EmployeeID.String()

	if err := o.bonuses.WithTx(tx).MarkPaidByEmployeeAndPeriod(ctx, companyID, employeeID, p.Start); err != nil {
		return err
	}
	if err := o.awards.WithTx(tx).MarkPaidByEmployee(ctx, companyID, employeeID, p.Start, paidAt); err != nil {
		return err
	}
	if rec.PFMinor > 0 {
		if err := o.pf.WithTx(tx).Accrue(ctx, companyID, employeeID, rec.PFMinor); err != nil {
			return err
		}
	}
	if err := o.records.WithTx(tx).UpdateStatus(ctx, companyID, rec.ID.String(), salary.StatusPaid, paidAt); err != nil {
		return err
	}

	event, err := kafka.NewOutboxEvent(companyID, employeeID, events.TypePaymentCompleted, events.TopicPayroll, events.PaymentCompleted{
		EventType:   events.TypePaymentCompleted,
		CompanyID:   companyID,
		EmployeeID:  employeeID,
		RecordID:    rec.ID.String(),
		PostingID:   postingID,
		PeriodStart: p.StartString(),
		PeriodEnd:   p.EndString(),
		NetPayMinor: rec.NetPayMinor,
		PaidAt:      paidAt,
	})
	if err != nil {
		return err
	}
	return o.outbox.WithTx(tx).Create(ctx, event)
}

// postWithRetry retries only the poster call. Safe because posting IDs are
// deterministic; a duplicate attempt books nothing twice.
func (o *orchestrator) postWithRetry(ctx context.Context, companyID, employeeID string, p period.Period, amountMinor int64) (string, error) {
	attempts := o.rules.LedgerRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(o.rules.LedgerBackoff):
			}
		}

		postingID, err := o.poster.PostPayment(ctx, companyID, employeeID, p, amountMinor)
		if err == nil {
			return postingID, nil
		}
		lastErr = err
		o.logger.Warn("ledger post attempt failed",
			zap.Int("attempt", i+1),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
	}
	return "", lastErr
}

func (o *orchestrator) BulkPay(ctx context.Context, companyID string, employeeIDs []string, p period.Period) []Result {
	results := make([]Result, len(employeeIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.rules.BulkWorkers)

	for i, employeeID := range employeeIDs {
		g.Go(func() error {
			receipt, err := o.Pay(gctx, companyID, employeeID, p)
			results[i] = toResult(employeeID, &receipt, err)
			return nil
		})
	}

	_ = g.Wait()
	return results
}

func (o *orchestrator) ProcessAwardPayments(ctx context.Context, companyID string, p period.Period) ([]Result, error) {
	employeeIDs, err := o.awards.ListEmployeesWithPending(ctx, companyID, p.Start)
	if err != nil {
		return nil, err
	}
	return o.BulkPay(ctx, companyID, employeeIDs, p), nil
}

func (o *orchestrator) BulkAction(ctx context.Context, companyID, action string, employeeIDs []string, p period.Period) ([]Result, error) {
	switch action {
	case ActionPay:
		return o.BulkPay(ctx, companyID, employeeIDs, p), nil
	case ActionCalculate, ActionCancel:
	default:
		return nil, apperror.New(apperror.CodeInvalidInput, "unknown bulk action", 400)
	}

	results := make([]Result, len(employeeIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.rules.BulkWorkers)

	for i, employeeID := range employeeIDs {
		g.Go(func() error {
			var err error
			if action == ActionCalculate {
				_, err = o.salary.Calculate(gctx, companyID, employeeID, p)
			} else {
				_, err = o.salary.Cancel(gctx, companyID, employeeID, p)
			}
			results[i] = toResult(employeeID, nil, err)
			return nil
		})
	}

	_ = g.Wait()
	return results, nil
}

func toResult(employeeID string, receipt *Receipt, err error) Result {
	if err != nil {
		res := Result{EmployeeID: employeeID, Error: err.Error()}
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			res.ErrorCode = appErr.Code
			res.Error = appErr.Message
		}
		return res
	}
	res := Result{EmployeeID: employeeID, Ok: true}
	if receipt != nil && receipt.RecordID != "" {
		res.Receipt = receipt
	}
	return res
}
