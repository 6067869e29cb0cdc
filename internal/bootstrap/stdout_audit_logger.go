package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes lifecycle audit events through the global zap
// logger. Good enough for single-process deployments; swap the interface
// implementation when audit events need a durable sink.
type StdoutAuditLogger struct {
	logger *zap.Logger
}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{logger: zap.L().Named("audit")}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	l.logger.Info(entry.Action,
		zap.Time("at", time.Now().UTC()),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
