package log

import (
	"io"
	"os"
	"strings"
	"time"
)

// Option adjusts the configuration of a [Logger] under construction.
type Option func(*config)

// WithOutput sets the writer receiving log records.
// A nil writer selects [os.Stderr], the interpreter's diagnostic stream.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w == nil {
			w = os.Stderr
		}

		c.output = w
	}
}

// WithLevel sets the minimum level of records that are written.
func WithLevel(level Level) Option {
	return func(c *config) { c.level = level }
}

// WithFormat sets the record encoding.
func WithFormat(format Format) Option {
	return func(c *config) { c.format = format }
}

// WithTimeLayout sets the timestamp layout.
//
// Names of the layouts in package [time] are accepted case-insensitively
// ("RFC3339", "Kitchen", "DateTime", ...), as is "none". Any other string is
// passed verbatim to [time.Time.Format]. A blank layout or "none" drops
// timestamps from the output.
func WithTimeLayout(layout string) Option {
	return func(c *config) { c.stamp = stamper(layout) }
}

// WithCaller controls whether the source location of the logging call is
// included.
func WithCaller(enable bool) Option {
	return func(c *config) { c.caller = enable }
}

// WithPretty controls colorized output. Text records print unquoted with
// gray keys; JSON records are indented.
func WithPretty(enable bool) Option {
	return func(c *config) { c.pretty = enable }
}

var namedLayouts = map[string]string{
	"none":        "",
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc1123":     time.RFC1123,
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"kitchen":     time.Kitchen,
	"stamp":       time.Stamp,
	"stampmilli":  time.StampMilli,
	"stampmicro":  time.StampMicro,
	"datetime":    time.DateTime,
	"timeonly":    time.TimeOnly,
}

func stamper(layout string) func(time.Time) string {
	if named, ok := namedLayouts[strings.ToLower(strings.TrimSpace(layout))]; ok {
		layout = named
	}

	if strings.TrimSpace(layout) == "" {
		return func(time.Time) string { return "" }
	}

	return func(t time.Time) string { return t.Format(layout) }
}
