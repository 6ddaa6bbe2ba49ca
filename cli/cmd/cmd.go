package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/curry/lang"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	sourceFilesKey struct{}
	optionsKey     struct{}
	outputKey      struct{}
)

// SourceFiles reads the program files named on the command line as one
// stream, in order, with stdin last.
type SourceFiles interface {
	IsZero() bool
	Stdin() io.Reader
	io.Reader
	io.WriterTo
	io.Closer
}

type sourceFiles struct {
	files    []*os.File
	hasStdin bool
	stream   io.Reader
}

// IsZero reports whether there are no source files.
func (s *sourceFiles) IsZero() bool { return len(s.files) == 0 && !s.hasStdin }

// Stdin returns os.Stdin if stdin was included as a source, or nil otherwise.
func (s *sourceFiles) Stdin() io.Reader {
	if s.hasStdin {
		return os.Stdin
	}

	return nil
}

func (s *sourceFiles) reader() io.Reader {
	if s.stream == nil {
		readers := make([]io.Reader, 0, len(s.files)+1)
		for _, f := range s.files {
			readers = append(readers, f)
		}

		if s.hasStdin {
			readers = append(readers, os.Stdin)
		}

		s.stream = io.MultiReader(readers...)
	}

	return s.stream
}

// Read implements io.Reader by reading from all source files in order,
// including stdin if present.
func (s *sourceFiles) Read(p []byte) (n int, err error) { return s.reader().Read(p) }

// WriteTo implements io.WriterTo by writing all source files to w in order,
// including stdin if present.
func (s *sourceFiles) WriteTo(w io.Writer) (n int64, err error) {
	return io.Copy(w, s.reader())
}

// Close closes every opened file. Stdin is left open.
func (s *sourceFiles) Close() error {
	errs := make([]error, 0, len(s.files))
	for _, f := range s.files {
		errs = append(errs, f.Close())
	}

	return errors.Join(errs...)
}

// fileKey uniquely identifies a file by its device and inode numbers.
type fileKey struct {
	dev uint64
	ino uint64
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// WithSourceFiles returns a new context.Context containing a [SourceFiles]
// reading the given paths.
//
// Paths naming the same file, by symlink or relative path, are read once.
// All occurrences of "-" are replaced with a single stdin reader placed last.
func WithSourceFiles(ctx context.Context, sources []string) context.Context {
	return context.WithValue(ctx, sourceFilesKey{}, buildSourceFiles(sources))
}

// buildSourceFiles opens the given paths, or returns nil if none can be read.
func buildSourceFiles(sources []string) SourceFiles {
	if len(sources) == 0 {
		return nil
	}

	var srcs sourceFiles

	seen := make(map[fileKey]struct{})

	stdinInfo, _ := os.Stdin.Stat()
	stdinKey, _ := makeFileKey(stdinInfo)

	for _, src := range sources {
		if src == stdinSource {
			seen[stdinKey] = struct{}{}

			continue
		}

		if file, ok := openUniqueFile(src, seen); ok {
			srcs.files = append(srcs.files, file)
		}
	}

	// Stdin may have been included via "-" or as a named file.
	_, srcs.hasStdin = seen[stdinKey]

	if srcs.IsZero() {
		return nil
	}

	return &srcs
}

// openUniqueFile opens the file at path unless a file with the same device
// and inode was seen before.
func openUniqueFile(path string, seen map[fileKey]struct{}) (*os.File, bool) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, false
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, false
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, false
	}

	key, ok := makeFileKey(info)
	if !ok {
		return nil, false
	}

	if _, exists := seen[key]; exists {
		return nil, false
	}

	seen[key] = struct{}{}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, false
	}

	return file, true
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	if info == nil {
		return key, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}

// sourceFilesFrom retrieves the SourceFiles stored in ctx by
// WithSourceFiles. Returns nil if none was stored.
func sourceFilesFrom(ctx context.Context) SourceFiles {
	r, _ := ctx.Value(sourceFilesKey{}).(SourceFiles)

	return r
}

// WithOptions returns a new context.Context carrying options for every
// program a command parses or evaluates.
func WithOptions(ctx context.Context, opts ...lang.Option) context.Context {
	return context.WithValue(ctx, optionsKey{}, opts)
}

func optionsFrom(ctx context.Context) []lang.Option {
	opts, _ := ctx.Value(optionsKey{}).([]lang.Option)

	return opts
}

// WithOutput returns a new context.Context whose commands write to w
// instead of stdout.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// loadProgram parses the source files in ctx, or an empty program if there
// are none.
func loadProgram(ctx context.Context) (*lang.Program, error) {
	src := sourceFilesFrom(ctx)
	if src == nil {
		return lang.ParseString(ctx, "", optionsFrom(ctx)...)
	}

	defer src.Close()

	return lang.ParseReader(ctx, src, optionsFrom(ctx)...)
}

// loadSession parses the source files in ctx and evaluates them.
func loadSession(ctx context.Context) (*lang.Session, *lang.Program, error) {
	prog, err := loadProgram(ctx)
	if err != nil {
		return nil, nil, err
	}

	s, err := lang.NewSession(ctx, prog, optionsFrom(ctx)...)
	if err != nil {
		return nil, nil, err
	}

	return s, prog, nil
}
