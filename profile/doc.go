// Package profile provides optional runtime profiling for the curry
// interpreter.
//
// Profiling wraps [github.com/pkg/profile] and must be enabled at build time
// with the "pprof" build tag. Without the tag every [Profiler] is a no-op and
// [Modes] is empty.
//
//	go build -tags pprof -o curry .
//
// A profiler is configured with a mode and an output directory and started
// around the code to be measured:
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles"}
//	defer p.Start().Stop()
//
// Profile files are written to Path with names matching the mode, for
// example cpu.pprof. Analyze them with go tool pprof:
//
//	go tool pprof -http=: ./curry /tmp/profiles/cpu.pprof
//
// The CLI exposes the same settings as --pprof-mode and --pprof-dir. The
// default directory is the pprof subdirectory of the user cache directory,
// such as ~/.cache/curry/pprof.
//
// When built with the tag, the package also imports [net/http/pprof], which
// registers its handlers on [net/http.DefaultServeMux].
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
