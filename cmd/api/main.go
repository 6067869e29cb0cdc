package main

import (
	"os"
	"time"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/app"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/bootstrap"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// The api binary serves the payroll HTTP surface: profiles, attendance,
// leave, bonus and award setup, salary calculation and disbursement.
func main() {
	_ = godotenv.Load()

	logger := bootstrap.NewLogger("payroll-api")
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	if err := app.BuildApp(r); err != nil {
		logger.Fatal("payroll api wiring failed", zap.Error(err))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	logger.Info("payroll api starting", zap.String("port", port))

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		bootstrap.NewStdoutAuditLogger(),
	)
}
