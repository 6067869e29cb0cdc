package bootstrap

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the process logger for one payroll binary. APP_ENV
// "production" switches to JSON output; anything else keeps the console
// encoder for local runs.
func NewLogger(component string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv("APP_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return logger.Named(component)
}
