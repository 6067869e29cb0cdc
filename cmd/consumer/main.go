package main

import (
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/app"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/bootstrap"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// The consumer binary tails the payroll Kafka topic and feeds downstream
// projections such as payslip notifications.
func main() {
	_ = godotenv.Load()

	logger := bootstrap.NewLogger("payroll-consumer")
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	logger.Info("payroll event consumer starting")
	if err := app.RunConsumer(); err != nil {
		logger.Fatal("event consumer stopped", zap.Error(err))
	}
}
