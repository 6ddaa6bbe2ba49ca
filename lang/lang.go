package lang

import (
	"context"
	"io"
	"log/slog"

	"github.com/klauspost/readahead"

	"github.com/ardnew/curry/lang/ast"
	"github.com/ardnew/curry/lang/parser"
	"github.com/ardnew/curry/lang/scope"
	"github.com/ardnew/curry/log"
)

// DefaultMaxDepth is the default bound on nested evaluation.
const DefaultMaxDepth = 4096

type options struct {
	logger   log.Logger
	maxDepth int
	cache    bool
}

// Option configures parsing and evaluation.
type Option func(*options)

// WithLogger sets the logger passed to every stage.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMaxDepth bounds nested evaluation. Zero or less means no bound.
func WithMaxDepth(depth int) Option {
	return func(o *options) { o.maxDepth = depth }
}

// WithCache enables or disables the program cache. It is enabled by
// default.
func WithCache(enabled bool) Option {
	return func(o *options) { o.cache = enabled }
}

func makeOptions(opts ...Option) options {
	o := options{maxDepth: DefaultMaxDepth, cache: true}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Program is a parsed and resolved curry program. It is immutable and may
// be shared.
type Program struct {
	// Source is the text the program was parsed from.
	Source string
	// Syntax is the surface syntax tree.
	Syntax ast.Program
	// Bindings holds the resolved value of each binding in program order.
	Bindings []scope.Binding
}

// Names returns the bound names in program order, duplicates included.
func (p *Program) Names() []string { return p.Syntax.Names() }

// Format writes the program in canonical surface syntax.
func (p *Program) Format(w io.Writer) error {
	_, err := io.WriteString(w, p.Syntax.String())

	return err
}

// ParseString parses and resolves a program.
func ParseString(ctx context.Context, source string, opts ...Option) (*Program, error) {
	o := makeOptions(opts...)
	if !o.cache {
		return parse(ctx, source, o)
	}

	return parseCached(ctx, source, o)
}

// ParseReader reads all of r and parses it as a program.
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (*Program, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	o := makeOptions(opts...)

	o.logger.TraceContext(ctx, "read input",
		slog.Int("source_bytes", len(data)))

	return ParseString(ctx, string(data), opts...)
}

func parse(ctx context.Context, source string, o options) (*Program, error) {
	syntax, err := parser.ParseProgram(ctx, source, parser.WithLogger(o.logger.Stage("parse")))
	if err != nil {
		return nil, sourceError(err, source)
	}

	bindings, err := scope.New(ctx, scope.WithLogger(o.logger.Stage("scope"))).Program(syntax)
	if err != nil {
		return nil, sourceError(err, source)
	}

	return &Program{Source: source, Syntax: syntax, Bindings: bindings}, nil
}
