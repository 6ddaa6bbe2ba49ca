package log

//go:generate go tool stringer --linecomment --type Level,Format --output config_string.go

import (
	"io"
	"iter"
	"log/slog"
	"slices"
	"strings"
	"time"
)

// Level represents the severity of a log message.
// The interpreter stages report at [LevelTrace], below slog's Debug.
type Level slog.Level

const (
	LevelTrace Level = Level(slog.LevelDebug - 4) // trace
	LevelDebug Level = Level(slog.LevelDebug)     // debug
	LevelInfo  Level = Level(slog.LevelInfo)      // info
	LevelWarn  Level = Level(slog.LevelWarn)      // warn
	LevelError Level = Level(slog.LevelError)     // error
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelInfo

var levels = []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}

// Levels returns an iterator over the names of all defined log levels, from
// most to least verbose.
func Levels() iter.Seq[string] { return names(levels) }

// ParseLevel returns the level named by s, ignoring case and surrounding
// space. Unknown names yield [DefaultLevel].
func ParseLevel(s string) Level { return parse(levels, s, DefaultLevel) }

// Format represents the output format for log messages.
type Format int

const (
	FormatText Format = iota // text
	FormatJSON               // json
)

// DefaultFormat is the default log message format.
const DefaultFormat = FormatJSON

var formats = []Format{FormatJSON, FormatText}

// Formats returns an iterator over the names of all defined log formats.
func Formats() iter.Seq[string] { return names(formats) }

// ParseFormat returns the format named by s, ignoring case and surrounding
// space. Unknown names yield [DefaultFormat].
func ParseFormat(s string) Format { return parse(formats, s, DefaultFormat) }

func names[T interface{ String() string }](all []T) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, v := range all {
			if !yield(v.String()) {
				return
			}
		}
	}
}

func parse[T interface {
	comparable
	String() string
}](all []T, s string, fallback T) T {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := slices.IndexFunc(all, func(v T) bool { return v.String() == s }); i >= 0 {
		return all[i]
	}

	return fallback
}

// DefaultTimeLayout is the timestamp layout used until [WithTimeLayout] says
// otherwise.
const DefaultTimeLayout = time.RFC3339

// config is the immutable state behind a [Logger].
// Options only ever modify a private copy, so a config may be shared freely
// between goroutines once built.
type config struct {
	output io.Writer
	stamp  func(time.Time) string
	level  Level
	format Format
	caller bool
	pretty bool
}

func defaultConfig(w io.Writer) config {
	return config{
		output: w,
		stamp:  stamper(DefaultTimeLayout),
		level:  DefaultLevel,
		format: DefaultFormat,
		pretty: true,
	}
}

// with returns a copy of c with opts applied.
func (c config) with(opts ...Option) config {
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// replace rewrites the built-in attributes: timestamps use the configured
// layout (or vanish), and levels print by name so that trace is not shown as
// "DEBUG-4".
func (c config) replace(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		if t, ok := a.Value.Any().(time.Time); ok {
			s := c.stamp(t)
			if s == "" {
				return slog.Attr{}
			}

			a.Value = slog.StringValue(s)
		}

	case slog.LevelKey:
		if level, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(strings.ToUpper(Level(level).String()))
		}
	}

	return a
}

func (c config) handler() slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource:   c.caller,
		Level:       slog.Level(c.level),
		ReplaceAttr: c.replace,
	}

	switch {
	case c.format == FormatJSON && c.pretty:
		return newPrettyJSONHandler(c.output, opts)
	case c.format == FormatText && c.pretty:
		return newPrettyTextHandler(c.output, opts)
	case c.format == FormatJSON:
		return slog.NewJSONHandler(c.output, opts)
	case c.format == FormatText:
		return slog.NewTextHandler(c.output, opts)
	default:
		return slog.DiscardHandler
	}
}
