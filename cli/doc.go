// Package cli contains the command line interface for curry.
//
// # Usage
//
// Source programs are named with the global --source flag, which may be
// repeated and accepts "-" for stdin. Every command reads the same program:
//
//	curry -s prelude.curry -s main.curry            # print the last binding
//	curry -s main.curry eval const 1 2              # apply a binding
//	curry -s main.curry eval -e 'const `a` `b`'     # evaluate an expression
//	curry -s main.curry repl                        # interactive session
//	curry fmt json main.curry                       # dump the syntax tree
//
// # Configuration
//
// Flag defaults are read from a curry program in the user configuration
// directory, for example ~/.config/curry/config. Each binding whose value is
// a string, boolean or number sets the flag of the same name, with
// underscores in place of hyphens:
//
//	val log_level = `debug` ;
//	val max_depth = 10,000 ;
//
// The init command writes such a file from the current flag values. A JSON
// file of the same name with a .json extension is also read. Command-line
// flags override both.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o curry .
//
// which adds the flags:
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default ~/.cache/curry/pprof)
package cli
