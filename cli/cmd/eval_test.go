package cmd

import (
	"errors"
	"testing"

	"github.com/ardnew/curry/lang"
	"github.com/ardnew/curry/lang/eval"
	"github.com/ardnew/curry/lang/parser"
	"github.com/ardnew/curry/lang/scope"
)

const evalSource = "val id = fun x -> x ;\n" +
	"val const = fun x y -> x ;\n" +
	"val greeting = `hi` ;\n"

func TestEval_Run(t *testing.T) {
	tests := []struct {
		name string
		cmd  Eval
		want string
	}{
		{"last binding", Eval{}, "`hi`\n"},
		{"named binding", Eval{Name: "greeting"}, "`hi`\n"},
		{"apply", Eval{Name: "id", Args: []string{"42"}}, "42\n"},
		{"apply curried", Eval{Name: "const", Args: []string{"true", "1"}}, "true\n"},
		{"partial application", Eval{Name: "const", Args: []string{"1"}}, "<closure/1>\n"},
		{"expression", Eval{Expr: "const greeting id"}, "`hi`\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := testContext(t, writeSource(t, "prog.curry", evalSource))

			if err := tt.cmd.Run(ctx); err != nil {
				t.Fatalf("Run() error: %v", err)
			}

			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		cmd    Eval
		want   error
	}{
		{"no bindings", "", Eval{}, ErrNoBindings},
		{"conflicting", evalSource, Eval{Name: "id", Expr: "1"}, ErrConflictingArg},
		{"missing", evalSource, Eval{Name: "missing"}, lang.ErrBindingNotFound},
		{"fault", evalSource, Eval{Name: "greeting", Args: []string{"1"}}, eval.ErrFault},
		{"free variable", evalSource, Eval{Expr: "nope"}, scope.ErrFreeVariable},
		{"syntax", "val = ;", Eval{}, parser.ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sources []string
			if tt.source != "" {
				sources = append(sources, writeSource(t, "prog.curry", tt.source))
			}

			ctx, out := testContext(t, sources...)

			err := tt.cmd.Run(ctx)
			if !errors.Is(err, tt.want) {
				t.Errorf("Run() error = %v, want %v", err, tt.want)
			}

			if out.Len() != 0 {
				t.Errorf("unexpected output %q", out.String())
			}
		})
	}
}
