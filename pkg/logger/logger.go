// Package logger provides the application's structured logger built on
// log/slog. Production gets JSON for log aggregators, everything else gets
// the human-readable text handler.
//
// Handlers should log through WithCtx so every line carries the request_id
// injected by the logging middleware:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("product served", "id", id)
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/ctrlz-wear/ctrlz-api/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// ctxKey stores the per-request logger in a context.
type ctxKey struct{}

// WithCtx returns the request-scoped logger stored in ctx by the logging
// middleware, or the base logger when there is none.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a request-scoped logger into ctx. Called by the Logger
// middleware; application code rarely needs it.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
