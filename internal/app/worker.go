package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/messaging/kafka"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/messaging/kafka/producer"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker drains the outbox into Kafka until interrupted. It is the only
// process that writes to the broker; the API server just inserts outbox rows.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	pollInterval := 3 * time.Second
	if v := os.Getenv("OUTBOX_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			pollInterval = d
		}
	}

	// Blocks until the signal context cancels.
	producer.ProcessOutboxEvents(ctx, kafka.NewOutboxRepository(sqlDB), kafkaWriter, logger, pollInterval)

	logger.Info("worker shut down")
	return nil
}
