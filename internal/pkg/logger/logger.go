// Package logger wraps the process wide zap logger with context aware helpers.
package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

// Init replaces the global zap logger. Safe to skip in tests: the zap
// default is a no-op logger.
func Init(level string, json bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if !json {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	zap.ReplaceGlobals(l)

	return nil
}

// WithRequestID returns a context whose log lines carry the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

func fromContext(ctx context.Context) *zap.SugaredLogger {
	l := zap.S()
	if ctx == nil {
		return l
	}
	if rid, ok := ctx.Value(ctxKey{}).(string); ok && rid != "" {
		l = l.With("request_id", rid)
	}
	return l
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Infof(format, args...)
}

func Info(ctx context.Context, msg string) {
	fromContext(ctx).Info(msg)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Errorf(format, args...)
}

func Error(ctx context.Context, msg string) {
	fromContext(ctx).Error(msg)
}

// Fatal logs err and exits. A nil err is ignored so it can wrap blocking calls directly.
func Fatal(ctx context.Context, err error) {
	if err == nil {
		return
	}
	fromContext(ctx).Fatal(err.Error())
}

func Sync() {
	_ = zap.L().Sync()
}
