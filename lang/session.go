package lang

import (
	"context"
	"iter"
	"log/slog"

	"github.com/samber/lo"

	"github.com/ardnew/curry/lang/debruijn"
	"github.com/ardnew/curry/lang/eval"
	"github.com/ardnew/curry/lang/parser"
	"github.com/ardnew/curry/lang/scope"
)

// Session is the evaluated environment of a program. Expressions evaluated
// in a session may refer to every name it binds, the most recent binding
// of a name shadowing earlier ones.
//
// A Session is not safe for concurrent use.
type Session struct {
	names  []string
	values []eval.Value
	opts   options
}

// NewSession evaluates each binding of prog in order. A nil prog yields an
// empty session.
func NewSession(ctx context.Context, prog *Program, opts ...Option) (*Session, error) {
	s := &Session{opts: makeOptions(opts...)}
	if prog == nil {
		return s, nil
	}

	var values []eval.Value

	_, err := s.run(ctx, func(e *eval.Evaluator) eval.Value {
		values = e.Program(prog.Bindings)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.names = lo.Map(prog.Bindings, func(b scope.Binding, _ int) string {
		return b.Name
	})
	s.values = values

	return s, nil
}

// Names returns the distinct bound names in order of first binding.
func (s *Session) Names() []string { return lo.Uniq(s.names) }

// Len returns the number of bindings, shadowed ones included.
func (s *Session) Len() int { return len(s.names) }

// All iterates over every binding in order, shadowed ones included.
func (s *Session) All() iter.Seq2[string, eval.Value] {
	return func(yield func(string, eval.Value) bool) {
		for i, name := range s.names {
			if !yield(name, s.values[i]) {
				return
			}
		}
	}
}

// Lookup returns the value most recently bound to name.
func (s *Session) Lookup(name string) (eval.Value, error) {
	i := lo.LastIndexOf(s.names, name)
	if i < 0 {
		return nil, ErrBindingNotFound.With(slog.String("name", name))
	}

	return s.values[i], nil
}

// Evaluate parses source as an expression and evaluates it in the session.
func (s *Session) Evaluate(ctx context.Context, source string) (eval.Value, error) {
	tree, err := s.resolve(ctx, source)
	if err != nil {
		return nil, err
	}

	return s.run(ctx, func(e *eval.Evaluator) eval.Value { return e.Evaluate(tree) })
}

// Bind parses source as a single val or def binding, evaluates it in the
// session and adds it to the session. It returns the bound name and value.
func (s *Session) Bind(ctx context.Context, source string) (string, eval.Value, error) {
	tl, err := parser.ParseTopLevel(ctx, source, parser.WithLogger(s.opts.logger.Stage("parse")))
	if err != nil {
		return "", nil, sourceError(err, source)
	}

	name, expr := tl.Binding()

	tree, err := scope.Resolve(ctx, expr,
		scope.WithLogger(s.opts.logger.Stage("scope")), scope.WithNames(s.names...))
	if err != nil {
		return "", nil, sourceError(err, source)
	}

	v, err := s.run(ctx, func(e *eval.Evaluator) eval.Value { return e.Evaluate(tree) })
	if err != nil {
		return "", nil, err
	}

	s.names = append(s.names, name.Name)
	s.values = append(s.values, v)

	s.opts.logger.DebugContext(ctx, "bound",
		slog.String("name", name.Name),
		slog.String("value", v.String()))

	return name.Name, v, nil
}

// Apply applies the value bound to name to each of args in turn. Each
// argument is an expression evaluated in the session.
func (s *Session) Apply(ctx context.Context, name string, args ...string) (eval.Value, error) {
	fn, err := s.Lookup(name)
	if err != nil {
		return nil, err
	}

	values := make([]eval.Value, len(args))

	for i, arg := range args {
		if values[i], err = s.Evaluate(ctx, arg); err != nil {
			return nil, err
		}
	}

	return s.run(ctx, func(e *eval.Evaluator) eval.Value { return e.Apply(fn, values...) })
}

// Reset removes every binding.
func (s *Session) Reset() {
	s.names, s.values = nil, nil
}

func (s *Session) resolve(ctx context.Context, source string) (debruijn.Expression, error) {
	expr, err := parser.ParseExpression(ctx, source, parser.WithLogger(s.opts.logger.Stage("parse")))
	if err != nil {
		return nil, sourceError(err, source)
	}

	tree, err := scope.Resolve(ctx, expr,
		scope.WithLogger(s.opts.logger.Stage("scope")), scope.WithNames(s.names...))
	if err != nil {
		return nil, sourceError(err, source)
	}

	return tree, nil
}

// run evaluates on a new evaluator seeded with the session values and
// returns a fault raised during evaluation as an error.
func (s *Session) run(
	ctx context.Context,
	fn func(*eval.Evaluator) eval.Value,
) (v eval.Value, err error) {
	defer eval.Recover(&err)

	e := eval.New(ctx,
		eval.WithLogger(s.opts.logger.Stage("eval")),
		eval.WithMaxDepth(s.opts.maxDepth),
		eval.WithStack(s.values...))

	return fn(e), nil
}
