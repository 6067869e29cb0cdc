package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// private key type so no other package can collide with our context keys
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	companyIDKey contextKey = "company_id"
	actorIDKey   contextKey = "actor_id"
	loggerKey    contextKey = "logger"
)

// --- Request ID helpers ---

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// --- Tenant helpers ---

func WithCompanyID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, companyIDKey, cid)
}

func GetCompanyID(ctx context.Context) string {
	if cid, ok := ctx.Value(companyIDKey).(string); ok {
		return cid
	}
	return ""
}

func WithActorID(ctx context.Context, aid string) context.Context {
	return context.WithValue(ctx, actorIDKey, aid)
}

func GetActorID(ctx context.Context) string {
	if aid, ok := ctx.Value(actorIDKey).(string); ok {
		return aid
	}
	return ""
}

// --- Logger helpers ---

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, or the fallback so callers
// never have to nil-check.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	if defaultLogger != nil {
		return defaultLogger
	}
	return zap.L()
}
