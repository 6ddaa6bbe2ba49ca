package debruijn

import (
	"reflect"
	"testing"

	"github.com/ardnew/curry/lang/ast"
)

func ref(i int) *Identifier { return &Identifier{Index: i} }

func lit(s string) *Literal { return &Literal{Value: ast.StringLiteral{Value: s}} }

func TestLargestFreeVariable(t *testing.T) {
	tests := []struct {
		name  string
		expr  Expression
		depth int
		want  int
	}{
		{"literal", lit("x"), 0, 0},
		{"literal at depth", lit("x"), 3, 0},
		{"bound identifier", ref(0), 1, 0},
		{"identifier one out", ref(1), 1, 1},
		{"identifier two out", ref(2), 1, 2},
		{"identifier at depth zero", ref(0), 0, 1},
		{"abstraction binds one more", &Abstraction{Body: ref(1)}, 1, 0},
		{"abstraction reaching out", &Abstraction{Body: ref(2)}, 1, 1},
		{"nested abstractions", Lambda(3, ref(5)), 1, 2},
		{
			"application takes max",
			Apply(ref(3), ref(1), lit("x")),
			1,
			3,
		},
		{
			"application of closed terms",
			Apply(Lambda(1, ref(0)), Lambda(2, ref(1))),
			1,
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LargestFreeVariable(tt.expr, tt.depth); got != tt.want {
				t.Errorf("LargestFreeVariable(%v, %d) = %d, want %d",
					tt.expr, tt.depth, got, tt.want)
			}
		})
	}
}

func TestLambdaApply(t *testing.T) {
	got := Apply(Lambda(2, ref(1)), lit("a"), lit("b"))
	want := &Application{
		Abstraction: &Application{
			Abstraction: &Abstraction{Body: &Abstraction{Body: ref(1)}},
			Argument:    lit("a"),
		},
		Argument: lit("b"),
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if s := got.String(); s != "((λ.λ.#1 `a`) `b`)" {
		t.Errorf("String() = %q", s)
	}
}

func TestClone_Independent(t *testing.T) {
	orig := &Abstraction{Body: Apply(ref(0), ref(1))}
	clone := orig.Clone().(*Abstraction)

	if !reflect.DeepEqual(orig, clone) {
		t.Fatalf("clone differs: %v vs %v", clone, orig)
	}

	clone.Body.(*Application).Argument.(*Identifier).Index = 7

	if orig.Body.(*Application).Argument.(*Identifier).Index != 1 {
		t.Error("mutating the clone changed the original")
	}
}
