package log

import (
	"context"
	"log/slog"
	"sync/atomic"
)

var defaultLog atomic.Pointer[Logger]

func init() { setDefault(Make(nil)) }

func setDefault(l Logger) { defaultLog.Store(&l) }

// Config reconfigures the default logger.
// The CLI calls it while flags are parsed, before any stage logs.
func Config(opts ...Option) { setDefault(Default().Wrap(opts...)) }

// Default returns the default logger.
// The CLI passes it down to the interpreter so that every stage logs with the
// configuration derived from the command line.
func Default() Logger { return *defaultLog.Load() }

// TraceContext logs at [LevelTrace] using the default logger.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, LevelTrace, msg, attrs...)
}

// DebugContext logs at [LevelDebug] using the default logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, LevelDebug, msg, attrs...)
}

// InfoContext logs at [LevelInfo] using the default logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, LevelInfo, msg, attrs...)
}

// WarnContext logs at [LevelWarn] using the default logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, LevelWarn, msg, attrs...)
}

// ErrorContext logs at [LevelError] using the default logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, LevelError, msg, attrs...)
}
