package notification

import (
	"context"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/events"

	"go.uber.org/zap"
)

// Notifier dispatches payout notifications. The real channels (SMS, email,
// payslip PDF) live outside this service; this implementation records the
// dispatch and is the seam a gateway client plugs into.
//
//go:generate mockgen -source=notifier.go -destination=mock/notifier_mock.go -package=mock
type Notifier interface {
	PaymentCompleted(ctx context.Context, event events.PaymentCompleted) error
}

type logNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger ...*zap.Logger) Notifier {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &logNotifier{logger: l.Named("notification")}
}

func (n *logNotifier) PaymentCompleted(_ context.Context, event events.PaymentCompleted) error {
	n.logger.Info("payment notification dispatched",
		zap.String("company_id", event.CompanyID),
		zap.String("employee_id", event.EmployeeID),
		zap.String("record_id", event.RecordID),
		zap.String("period_start", event.PeriodStart),
		zap.Int64("net_pay_minor", event.NetPayMinor),
	)
	return nil
}
