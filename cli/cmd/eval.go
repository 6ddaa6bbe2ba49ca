package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/curry/lang/eval"
	"github.com/ardnew/curry/pkg"
)

// Eval evaluates a program and prints a value.
type Eval struct {
	Name string   `arg:"" help:"Binding to evaluate (default: the last binding)" name:"name" optional:""`
	Args []string `arg:"" help:"Argument expressions applied to the binding"     name:"args" optional:""`
	Expr string   `       help:"Expression to evaluate in the program's scope"                                short:"e"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s, prog, err := loadSession(ctx)
	if err != nil {
		return pkg.WrapError(err).With(slog.String("command", "eval"))
	}

	var v eval.Value

	switch {
	case e.Expr != "" && e.Name != "":
		return ErrConflictingArg.
			With(slog.String("expr", e.Expr), slog.String("name", e.Name))

	case e.Expr != "":
		v, err = s.Evaluate(ctx, e.Expr)

	case e.Name != "":
		v, err = s.Apply(ctx, e.Name, e.Args...)

	default:
		names := prog.Names()
		if len(names) == 0 {
			return ErrNoBindings
		}

		v, err = s.Lookup(names[len(names)-1])
	}

	if err != nil {
		return pkg.WrapError(err).With(
			slog.String("command", "eval"),
			slog.String("binding", e.Name),
		)
	}

	_, err = fmt.Fprintln(outputFrom(ctx), v)

	return err
}
