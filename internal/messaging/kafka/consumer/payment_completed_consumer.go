package consumer

import (
	"context"
	"encoding/json"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/events"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePaymentCompleted turns payment-completed events into notification
// dispatches. Other event types on the topic are committed and skipped.
func ConsumePaymentCompleted(
	ctx context.Context,
	reader *kafkago.Reader,
	notifier notification.Notifier,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payment_completed")
	log.Info("payment completed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payment completed consumer stopped")
				return
			}
			log.Error("fetch payment completed message failed", zap.Error(err))
			continue
		}

		var event events.PaymentCompleted
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payment completed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.EventType != events.TypePaymentCompleted {
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := notifier.PaymentCompleted(ctx, event); err != nil {
			log.Error("dispatch payment notification failed",
				zap.String("record_id", event.RecordID),
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payment completed message failed", zap.Error(err))
			continue
		}

		log.Info("payment notification sent",
			zap.String("record_id", event.RecordID),
			zap.String("employee_id", event.EmployeeID),
		)
	}
}
