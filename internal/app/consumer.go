package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/events"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/messaging/kafka/consumer"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer reads payment-completed events and dispatches notifications
// until interrupted.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.TopicPayroll,
		GroupID:        "payroll-notifications",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	notifier := notification.NewLogNotifier(zap.L())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePaymentCompleted(ctx, reader, notifier, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
