package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// prettyHandler is the state shared by the colorized handlers: options,
// the output writer with its lock, and attributes accumulated by WithAttrs
// and WithGroup. Group names are flattened into dotted key prefixes.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	prefix string
}

func (h prettyHandler) enabled(level slog.Level) bool {
	lowest := slog.LevelInfo
	if h.opts.Level != nil {
		lowest = h.opts.Level.Level()
	}

	return level >= lowest
}

func (h prettyHandler) withAttrs(attrs []slog.Attr) prettyHandler {
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		h.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], a)
	}

	return h
}

func (h prettyHandler) withGroup(name string) prettyHandler {
	if name != "" {
		h.prefix += name + "."
	}

	return h
}

// replace applies the configured ReplaceAttr hook to the built-in keys.
func (h prettyHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}

// header returns the built-in attributes of a record (time, level, source,
// message) after replacement. Attributes removed by ReplaceAttr are omitted.
func (h prettyHandler) header(r slog.Record) []slog.Attr {
	head := make([]slog.Attr, 0, 4)

	if !r.Time.IsZero() {
		head = append(head, h.replace(slog.Time(slog.TimeKey, r.Time)))
	}

	head = append(head, h.replace(slog.Any(slog.LevelKey, r.Level)))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			head = append(head, slog.String(slog.SourceKey,
				fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	head = append(head, slog.String(slog.MessageKey, r.Message))

	kept := head[:0]
	for _, a := range head {
		if a.Key != "" {
			kept = append(kept, a)
		}
	}

	return kept
}

// body returns the handler's accumulated attributes followed by the record's
// own attributes, with LogValuers resolved and groups flattened.
func (h prettyHandler) body(r slog.Record) []slog.Attr {
	out := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		out = flatten(out, "", a)
	}

	r.Attrs(func(a slog.Attr) bool {
		out = flatten(out, h.prefix, a)

		return true
	})

	return out
}

func flatten(out []slog.Attr, prefix string, a slog.Attr) []slog.Attr {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() != slog.KindGroup {
		if a.Key == "" {
			return out
		}

		a.Key = prefix + a.Key

		return append(out, a)
	}

	if a.Key != "" {
		prefix += a.Key + "."
	}

	for _, g := range a.Value.Group() {
		out = flatten(out, prefix, g)
	}

	return out
}

func (h prettyHandler) write(buf *bytes.Buffer) error {
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

// prettyTextHandler implements a colorized text handler for log messages.
type prettyTextHandler struct{ prettyHandler }

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{prettyHandler{opts: *opts, mu: &sync.Mutex{}, w: w}}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	for _, a := range h.header(r) {
		writeTextAttr(buf, a)
	}

	for _, a := range h.body(r) {
		writeTextAttr(buf, a)
	}

	return h.write(buf)
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyTextHandler{h.withAttrs(attrs)}
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	return &prettyTextHandler{h.withGroup(name)}
}

func writeTextAttr(buf *bytes.Buffer, a slog.Attr) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(colorGray)
	buf.WriteString(a.Key)
	buf.WriteString(colorReset)
	buf.WriteByte('=')

	writeValue(buf, a.Value, false)
}

// prettyJSONHandler implements a pretty-printed JSON handler for log messages.
type prettyJSONHandler struct{ prettyHandler }

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyJSONHandler {
	return &prettyJSONHandler{prettyHandler{opts: *opts, mu: &sync.Mutex{}, w: w}}
}

func (h *prettyJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)
	buf.WriteString("{")

	attrs := append(h.header(r), h.body(r)...)
	for i, a := range attrs {
		if i > 0 {
			buf.WriteByte(',')
		}

		buf.WriteString("\n  ")
		buf.WriteString(colorGray)
		buf.WriteString(strconv.Quote(a.Key))
		buf.WriteString(colorReset)
		buf.WriteString(": ")

		writeValue(buf, a.Value, true)
	}

	buf.WriteString("\n}")

	return h.write(buf)
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyJSONHandler{h.withAttrs(attrs)}
}

func (h *prettyJSONHandler) WithGroup(name string) slog.Handler {
	return &prettyJSONHandler{h.withGroup(name)}
}

// writeValue writes v colorized by kind. Strings are quoted when quote is set.
func writeValue(buf *bytes.Buffer, v slog.Value, quote bool) {
	color, text := colorGray, ""

	switch v.Kind() {
	case slog.KindString:
		color, text = colorCyan, v.String()
		if quote {
			text = strconv.Quote(text)
		}

	case slog.KindInt64:
		color, text = colorYellow, strconv.FormatInt(v.Int64(), 10)

	case slog.KindUint64:
		color, text = colorYellow, strconv.FormatUint(v.Uint64(), 10)

	case slog.KindFloat64:
		color, text = colorYellow, strconv.FormatFloat(v.Float64(), 'g', -1, 64)

	case slog.KindBool:
		color, text = colorRed, "false"
		if v.Bool() {
			color, text = colorGreen, "true"
		}

	case slog.KindDuration:
		color, text = colorMagenta, v.Duration().String()

	case slog.KindTime:
		color, text = colorBlue, v.Time().String()

	default:
		if level, ok := v.Any().(slog.Level); ok {
			switch {
			case level >= slog.LevelError:
				color = colorRed
			case level >= slog.LevelWarn:
				color = colorYellow
			case level >= slog.LevelInfo:
				color = colorGreen
			default:
				color = colorBlue
			}

			text = strings.ToUpper(Level(level).String())
		} else {
			color, text = colorCyan, v.String()
		}

		if quote {
			text = strconv.Quote(text)
		}
	}

	buf.WriteString(color)
	buf.WriteString(text)
	buf.WriteString(colorReset)
}
