package main

import (
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/app"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/bootstrap"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// The worker binary drains the payroll outbox to Kafka so payment-completed
// events survive api restarts.
func main() {
	_ = godotenv.Load()

	logger := bootstrap.NewLogger("payroll-outbox-worker")
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	logger.Info("payroll outbox worker starting")
	if err := app.RunWorker(); err != nil {
		logger.Fatal("outbox worker stopped", zap.Error(err))
	}
}
