// Package eval evaluates De Bruijn expressions.
//
// The [Evaluator] walks a tree against a stack of values, one slot per
// enclosing binder, most recent last. An abstraction evaluates to a
// [Closure] capturing only the stack entries its body can read, as computed
// by [debruijn.LargestFreeVariable]. Applying a closure pushes its captured
// entries and then the argument, evaluates the body, and pops them again.
//
// Evaluation of a well-scoped tree cannot fail. Trees that are not well
// scoped, or that apply a non-closure, panic with a [*Fault].
package eval

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/ardnew/curry/lang/debruijn"
	"github.com/ardnew/curry/lang/scope"
	"github.com/ardnew/curry/log"
)

// Evaluator holds the value stack.
type Evaluator struct {
	stack    []Value
	depth    int
	maxDepth int
	ctx      context.Context
	logger   log.Logger
}

// Option configures an [Evaluator].
type Option func(*Evaluator)

// WithLogger sets the logger used for trace output.
func WithLogger(logger log.Logger) Option {
	return func(e *Evaluator) { e.logger = logger }
}

// WithMaxDepth bounds the nesting of evaluation. Exceeding it faults.
// Zero or less means no bound.
func WithMaxDepth(n int) Option {
	return func(e *Evaluator) { e.maxDepth = n }
}

// WithStack seeds the stack with values bound outside the tree, outermost
// first.
func WithStack(values ...Value) Option {
	return func(e *Evaluator) { e.stack = append(e.stack[:0:0], values...) }
}

// New returns an evaluator.
func New(ctx context.Context, opts ...Option) *Evaluator {
	e := &Evaluator{ctx: ctx}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate evaluates expr using a new evaluator configured by opts.
func Evaluate(ctx context.Context, expr debruijn.Expression, opts ...Option) Value {
	return New(ctx, opts...).Evaluate(expr)
}

// Len returns the number of values on the stack.
func (e *Evaluator) Len() int { return len(e.stack) }

// Stack returns a copy of the stack, outermost first.
func (e *Evaluator) Stack() []Value { return append([]Value(nil), e.stack...) }

// WithValues pushes values, in order, runs fn, and pops them again however
// fn returns, including by panic.
func (e *Evaluator) WithValues(values []Value, fn func() Value) Value {
	base := len(e.stack)
	e.stack = append(e.stack, values...)

	defer func() {
		clear(e.stack[base:])
		e.stack = e.stack[:base]
	}()

	return fn()
}

// Evaluate evaluates expr. The stack is unchanged when it returns.
func (e *Evaluator) Evaluate(expr debruijn.Expression) Value {
	e.depth++
	defer func() { e.depth-- }()

	if e.maxDepth > 0 && e.depth > e.maxDepth {
		panic(fault("maximum evaluation depth exceeded", expr))
	}

	switch x := expr.(type) {
	case *debruijn.Literal:
		return FromLiteral(x.Value)

	case *debruijn.Identifier:
		if x.Index < 0 || x.Index >= len(e.stack) {
			panic(fault("unbound identifier: "+strconv.Itoa(x.Index), x))
		}

		return e.stack[len(e.stack)-1-x.Index]

	case *debruijn.Abstraction:
		return e.closure(x)

	case *debruijn.Application:
		fn := e.Evaluate(x.Abstraction)
		arg := e.Evaluate(x.Argument)

		return e.apply(fn, arg, x)

	default:
		panic(fault("unknown expression type", expr))
	}
}

// closure captures the top entries of the stack that the body of abs can
// reach. The count is clamped to the stack so a tree evaluated in an
// incomplete environment captures what exists and faults only if the
// missing entry is read.
func (e *Evaluator) closure(abs *debruijn.Abstraction) *Closure {
	n := min(debruijn.LargestFreeVariable(abs.Body, 1), len(e.stack))
	captured := append([]Value(nil), e.stack[len(e.stack)-n:]...)

	e.logger.TraceContext(e.ctx, "capture",
		slog.Int("count", n),
		slog.Int("stack", len(e.stack)),
		slog.String("body", abs.Body.String()))

	return &Closure{Captured: captured, Body: abs.Body.Clone()}
}

func (e *Evaluator) apply(fn, arg Value, at debruijn.Expression) Value {
	c, ok := fn.(*Closure)
	if !ok {
		panic(fault("not a closure", at))
	}

	frame := make([]Value, 0, len(c.Captured)+1)
	frame = append(append(frame, c.Captured...), arg)

	return e.WithValues(frame, func() Value { return e.Evaluate(c.Body) })
}

// Apply applies fn to each of args in turn.
func (e *Evaluator) Apply(fn Value, args ...Value) Value {
	for _, arg := range args {
		fn = e.apply(fn, arg, nil)
	}

	return fn
}

// Program evaluates each binding with the values of the bindings before it
// on the stack, above any values the evaluator was seeded with, and returns
// the values in order. The stack is unchanged when it returns.
func (e *Evaluator) Program(bindings []scope.Binding) []Value {
	base := len(e.stack)

	defer func() {
		clear(e.stack[base:])
		e.stack = e.stack[:base]
	}()

	out := make([]Value, 0, len(bindings))

	for _, b := range bindings {
		v := e.Evaluate(b.Value)
		out = append(out, v)
		e.stack = append(e.stack, v)

		e.logger.TraceContext(e.ctx, "bound",
			slog.String("name", b.Name),
			slog.String("value", v.String()))
	}

	return out
}
