// Package log is the structured logger shared by the curry interpreter and
// its command line, built on [log/slog].
//
//	logger := log.Make(os.Stderr, log.WithLevel(log.LevelTrace))
//	logger.Stage("parse").TraceContext(ctx, "rewind", slog.Int("cursor", 3))
//
// Each interpreter stage receives a [Logger] tagged with [Logger.Stage] and
// reports at [LevelTrace], one step more verbose than slog's Debug. A zero
// [Logger] discards all records, which is what library callers get unless
// they pass one in.
//
// Records are encoded as [FormatJSON] (the default) or [FormatText], either
// plain or colorized with [WithPretty]. Timestamps follow [WithTimeLayout].
//
// The package-level functions write to a default logger on standard error,
// which the command line reconfigures with [Config] while parsing flags.
package log
