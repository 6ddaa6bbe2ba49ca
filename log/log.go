package log

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// StageKey is the attribute naming the interpreter stage that emitted a
// record.
const StageKey = "stage"

// Logger is a leveled structured logger that is safe for concurrent use.
// The zero value discards everything, so stages can hold one unconditionally.
type Logger struct {
	*slog.Logger
	cfg config
}

// Make creates a [Logger] that writes to w, which defaults to [os.Stderr]
// when nil. Without options it logs [DefaultLevel] and above as pretty
// [DefaultFormat] records stamped with [DefaultTimeLayout].
func Make(w io.Writer, opts ...Option) Logger {
	return build(defaultConfig(nil).with(WithOutput(w)).with(opts...))
}

func build(cfg config) Logger {
	return Logger{Logger: slog.New(cfg.handler()), cfg: cfg}
}

// Wrap returns a new [Logger] with l's configuration overridden by opts.
// Attributes added with [Logger.With] are not carried over.
func (l Logger) Wrap(opts ...Option) Logger {
	if l.Logger == nil {
		return Make(nil, opts...)
	}

	return build(l.cfg.with(opts...))
}

// With returns a [Logger] that adds attrs to each record.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.Logger == nil {
		return l
	}

	return Logger{
		Logger: slog.New(l.Handler().WithAttrs(attrs)),
		cfg:    l.cfg,
	}
}

// Stage returns a [Logger] that tags each record with the given stage name.
func (l Logger) Stage(name string) Logger {
	return l.With(slog.String(StageKey, name))
}

// Level returns the minimum level written.
func (l Logger) Level() Level {
	if l.Logger == nil {
		return DefaultLevel
	}

	return l.cfg.level
}

// Format returns the record encoding.
func (l Logger) Format() Format {
	if l.Logger == nil {
		return DefaultFormat
	}

	return l.cfg.format
}

// TraceContext logs at [LevelTrace].
func (l Logger) TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.logContext(ctx, LevelTrace, msg, attrs...)
}

// DebugContext logs at [LevelDebug].
func (l Logger) DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.logContext(ctx, LevelDebug, msg, attrs...)
}

// InfoContext logs at [LevelInfo].
func (l Logger) InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.logContext(ctx, LevelInfo, msg, attrs...)
}

// WarnContext logs at [LevelWarn].
func (l Logger) WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.logContext(ctx, LevelWarn, msg, attrs...)
}

// ErrorContext logs at [LevelError].
func (l Logger) ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.logContext(ctx, LevelError, msg, attrs...)
}

// callerSkip drops runtime.Callers, logContext, and the exported method (or
// package function) so the recorded source is the logging call site.
const callerSkip = 3

func (l Logger) logContext(
	ctx context.Context,
	level Level,
	msg string,
	attrs ...slog.Attr,
) {
	if l.Logger == nil || !l.Enabled(ctx, slog.Level(level)) {
		return
	}

	var pc uintptr
	if l.cfg.caller {
		var pcs [1]uintptr
		runtime.Callers(callerSkip, pcs[:])
		pc = pcs[0]
	}

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pc)
	r.AddAttrs(attrs...)
	_ = l.Handler().Handle(ctx, r)
}
