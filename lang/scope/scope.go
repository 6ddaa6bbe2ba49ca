// Package scope converts surface syntax trees to De Bruijn form.
//
// The [Resolver] keeps a stack of binder names, most recent last. An
// identifier resolves to the distance between the top of the stack and the
// last entry with its name. A name that is not on the stack is a free
// variable, and resolution of the whole tree fails.
package scope

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	"github.com/ardnew/curry/lang/ast"
	"github.com/ardnew/curry/lang/debruijn"
	"github.com/ardnew/curry/lang/token"
	"github.com/ardnew/curry/log"
	"github.com/ardnew/curry/pkg"
)

// ErrFreeVariable is matched by every [FreeVariableError].
var ErrFreeVariable = pkg.NewError("free variable")

// FreeVariableError reports an identifier with no enclosing binder.
// Pos is the identifier's source position, when known.
type FreeVariableError struct {
	Name string
	Pos  token.Position
}

func (e *FreeVariableError) Error() string { return "free variable: " + e.Name }

func (e *FreeVariableError) Unwrap() error { return ErrFreeVariable }

func (e *FreeVariableError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "free variable"),
		slog.String("name", e.Name),
		slog.String("pos", e.Pos.String()),
	)
}

// Resolver holds the binder-name stack.
type Resolver struct {
	names  []string
	ctx    context.Context
	logger log.Logger
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithLogger sets the logger used for trace output.
func WithLogger(logger log.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// WithNames seeds the binder stack with names bound outside the tree,
// outermost first.
func WithNames(names ...string) Option {
	return func(r *Resolver) { r.names = append(r.names[:0:0], names...) }
}

// New returns a resolver.
func New(ctx context.Context, opts ...Option) *Resolver {
	r := &Resolver{ctx: ctx}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve converts expr using a new resolver configured by opts.
func Resolve(
	ctx context.Context,
	expr ast.Expression,
	opts ...Option,
) (debruijn.Expression, error) {
	return New(ctx, opts...).Resolve(expr)
}

// Depth returns the number of names on the binder stack.
func (r *Resolver) Depth() int { return len(r.names) }

// WithBindings pushes names, in order, runs fn, and pops them again
// whether or not fn fails.
func (r *Resolver) WithBindings(names []string, fn func() error) error {
	base := len(r.names)
	r.names = append(r.names, names...)

	r.logger.TraceContext(r.ctx, "push binders",
		slog.Any("names", names),
		slog.Int("depth", len(r.names)))

	defer func() {
		r.names = r.names[:base]

		r.logger.TraceContext(r.ctx, "pop binders",
			slog.Int("count", len(names)),
			slog.Int("depth", base))
	}()

	return fn()
}

// Lookup returns the De Bruijn index of name.
func (r *Resolver) Lookup(name string) (int, error) {
	for i := len(r.names) - 1; i >= 0; i-- {
		if r.names[i] == name {
			return len(r.names) - 1 - i, nil
		}
	}

	return 0, &FreeVariableError{Name: name}
}

// Resolve converts a surface expression. The binder stack is unchanged
// when it returns.
func (r *Resolver) Resolve(expr ast.Expression) (debruijn.Expression, error) {
	switch e := expr.(type) {
	case ast.Literal:
		return &debruijn.Literal{Value: e}, nil

	case ast.Identifier:
		index, err := r.Lookup(e.Name)
		if err != nil {
			return nil, &FreeVariableError{Name: e.Name, Pos: e.Pos}
		}

		return &debruijn.Identifier{Index: index}, nil

	case ast.Abstraction:
		names := lo.Map(e.Parameters, func(p ast.Identifier, _ int) string {
			return p.Name
		})

		var body debruijn.Expression

		err := r.WithBindings(names, func() error {
			var err error

			body, err = r.Resolve(e.Body)

			return err
		})
		if err != nil {
			return nil, err
		}

		return debruijn.Lambda(len(names), body), nil

	case ast.Application:
		fn, err := r.Resolve(e.Abstraction)
		if err != nil {
			return nil, err
		}

		for _, arg := range e.Arguments {
			a, err := r.Resolve(arg)
			if err != nil {
				return nil, err
			}

			fn = debruijn.Apply(fn, a)
		}

		return fn, nil

	default:
		panic("scope: unknown expression type")
	}
}

// Binding is a resolved top-level binding.
type Binding struct {
	Name  string
	Value debruijn.Expression
}

// Program resolves each binding with the names of the bindings before it
// on the stack, above any names the resolver was seeded with.
func (r *Resolver) Program(prog ast.Program) ([]Binding, error) {
	base := len(r.names)
	defer func() { r.names = r.names[:base] }()

	out := make([]Binding, 0, len(prog.Bindings))

	for _, b := range prog.Bindings {
		name, value := b.Binding()

		expr, err := r.Resolve(value)
		if err != nil {
			return nil, err
		}

		out = append(out, Binding{Name: name.Name, Value: expr})
		r.names = append(r.names, name.Name)

		r.logger.TraceContext(r.ctx, "resolved binding",
			slog.String("name", name.Name),
			slog.String("value", expr.String()))
	}

	return out, nil
}
