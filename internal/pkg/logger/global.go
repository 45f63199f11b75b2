package logger

import (
	"context"
	"sync"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
)

var (
	globalLogger *ZapLogger
	globalMu     sync.RWMutex
)

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger *ZapLogger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() *ZapLogger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// Info logs at info level using the global logger
func Info(msg string, fields ...Field) {
	if l := GetGlobalLogger(); l != nil {
		l.Logger.Info(msg, fields...)
	}
}

// Warn logs at warn level using the global logger
func Warn(msg string, fields ...Field) {
	if l := GetGlobalLogger(); l != nil {
		l.Logger.Warn(msg, fields...)
	}
}

// Debug logs at debug level using the global logger
func Debug(msg string, fields ...Field) {
	if l := GetGlobalLogger(); l != nil {
		l.Logger.Debug(msg, fields...)
	}
}

// Error logs at error level using the global logger
func Error(msg string, fields ...Field) {
	if l := GetGlobalLogger(); l != nil {
		l.Logger.Error(msg, fields...)
	}
}

// Fatal logs at fatal level using the global logger and exits
func Fatal(msg string, fields ...Field) {
	if l := GetGlobalLogger(); l != nil {
		l.Logger.Fatal(msg, fields...)
	}
}

// fromContext returns a logger enriched with New Relic trace correlation
// when a transaction is present on the context.
func fromContext(ctx context.Context) *zap.Logger {
	l := GetGlobalLogger()
	if l == nil {
		return nil
	}
	if txn := newrelic.FromContext(ctx); txn != nil {
		return l.WithNewRelicContext(txn)
	}
	return l.Logger
}

// InfoCtx logs at info level with trace correlation from context
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	if l := fromContext(ctx); l != nil {
		l.Info(msg, fields...)
	}
}

// WarnCtx logs at warn level with trace correlation from context
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	if l := fromContext(ctx); l != nil {
		l.Warn(msg, fields...)
	}
}

// DebugCtx logs at debug level with trace correlation from context
func DebugCtx(ctx context.Context, msg string, fields ...Field) {
	if l := fromContext(ctx); l != nil {
		l.Debug(msg, fields...)
	}
}

// ErrorCtx logs at error level with trace correlation from context
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	if l := fromContext(ctx); l != nil {
		l.Error(msg, fields...)
	}
}
