package producer

import (
	"context"
	"time"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const outboxBatchSize = 50

// ProcessOutboxEvents polls the outbox and publishes pending events until the
// context is cancelled. One failed event never blocks the rest of the batch;
// it is marked failed and picked up again after its retry backoff.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	// Drain whatever accumulated while the worker was down before settling
	// into the poll cadence.
	drainOutbox(ctx, repo, writer, log)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			drainOutbox(ctx, repo, writer, log)
		}
	}
}

func drainOutbox(ctx context.Context, repo kafka.OutboxRepository, writer *kafkago.Writer, log *zap.Logger) {
	for {
		events, err := repo.ListPending(ctx, outboxBatchSize)
		if err != nil {
			log.Error("list pending outbox events failed", zap.Error(err))
			return
		}
		if len(events) == 0 {
			return
		}

		for _, event := range events {
			if err := publishEvent(ctx, writer, event); err != nil {
				log.Error("publish outbox event failed",
					zap.String("outbox_id", event.ID),
					zap.String("event_type", event.EventType),
					zap.Int("retry_count", event.RetryCount),
					zap.Error(err),
				)
				_ = repo.MarkFailed(ctx, event.ID, err.Error())
				continue
			}

			if err := repo.MarkSent(ctx, event.ID); err != nil {
				log.Error("mark outbox sent failed",
					zap.String("outbox_id", event.ID),
					zap.Error(err),
				)
				continue
			}

			log.Info("outbox event sent",
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
			)
		}

		// A full batch hints at more backlog; loop without waiting for the
		// next tick.
		if len(events) < outboxBatchSize {
			return
		}
	}
}
