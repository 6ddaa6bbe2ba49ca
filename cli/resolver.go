package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/curry/lang"
	"github.com/ardnew/curry/lang/ast"
	"github.com/ardnew/curry/lang/eval"
	"github.com/ardnew/curry/log"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag defaults from
// a curry program.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx), "/path/to/config")
//
// The program is evaluated and each binding whose value is a string, boolean
// or number supplies the flag of the same name. Flag names with hyphens
// (e.g., "log-level") are bound with underscores (e.g., "log_level").
// Bindings to functions are ignored, so a config file may define helpers:
//
//	val id = fun x -> x ;
//	val log_level = id `debug` ;
//	val log_pretty = false ;
//	val max_depth = 1,024 ;
//
// A config file that fails to parse or evaluate is ignored. Command-line
// flags override config file values.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		prog, err := lang.ParseReader(ctx, r)
		if err != nil {
			log.DebugContext(ctx, "ignoring config", slog.Any("error", err))

			return config{}, nil
		}

		s, err := lang.NewSession(ctx, prog)
		if err != nil {
			log.DebugContext(ctx, "ignoring config", slog.Any("error", err))

			return config{}, nil
		}

		cfg := make(config)

		for name, v := range s.All() {
			if native, ok := flagNative(v); ok {
				cfg[name] = native
			}
		}

		return cfg, nil
	}
}

// flagNative converts a value to the form kong decodes flags from.
// Kong requires numbers as strings for parsing.
func flagNative(v eval.Value) (any, bool) {
	switch v := v.(type) {
	case eval.String:
		return string(v), true
	case eval.Bool:
		return bool(v), true
	case eval.Number:
		return ast.FormatNumber(float64(v)), true
	default:
		return nil, false
	}
}

// config implements [kong.Resolver] for curry configuration programs.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil //nolint:nilnil
}
