// Package debruijn defines the nameless syntax tree evaluated by the
// interpreter.
//
// Every [Abstraction] binds exactly one variable and every [Application]
// passes exactly one argument. An [Identifier] refers to its binder by
// index: 0 is the nearest enclosing abstraction, 1 the one outside it, and
// so on.
package debruijn

import (
	"strconv"

	"github.com/ardnew/curry/lang/ast"
)

// Expression is any De Bruijn expression node.
type Expression interface {
	expression()
	// Clone returns a deep copy sharing no nodes with the receiver.
	Clone() Expression
	String() string
}

// Literal wraps a surface literal, which is the same in both trees.
type Literal struct {
	Value ast.Literal
}

// Identifier refers to the binder Index levels up.
type Identifier struct {
	Index int
}

// Abstraction binds one variable in Body.
type Abstraction struct {
	Body Expression
}

// Application applies Abstraction to Argument.
type Application struct {
	Abstraction Expression
	Argument    Expression
}

func (*Literal) expression()     {}
func (*Identifier) expression()  {}
func (*Abstraction) expression() {}
func (*Application) expression() {}

func (l *Literal) Clone() Expression { return &Literal{Value: l.Value} }

func (i *Identifier) Clone() Expression { return &Identifier{Index: i.Index} }

func (a *Abstraction) Clone() Expression {
	return &Abstraction{Body: a.Body.Clone()}
}

func (a *Application) Clone() Expression {
	return &Application{
		Abstraction: a.Abstraction.Clone(),
		Argument:    a.Argument.Clone(),
	}
}

func (l *Literal) String() string { return l.Value.String() }

func (i *Identifier) String() string { return "#" + strconv.Itoa(i.Index) }

func (a *Abstraction) String() string { return "λ." + a.Body.String() }

func (a *Application) String() string {
	return "(" + a.Abstraction.String() + " " + a.Argument.String() + ")"
}

// Lambda wraps body in n single-binder abstractions.
func Lambda(n int, body Expression) Expression {
	for range n {
		body = &Abstraction{Body: body}
	}

	return body
}

// Apply applies f to args left to right: Apply(f, a, b) is ((f a) b).
func Apply(f Expression, args ...Expression) Expression {
	for _, arg := range args {
		f = &Application{Abstraction: f, Argument: arg}
	}

	return f
}

// LargestFreeVariable returns how many stack slots outside expr the
// expression can read when evaluated depth binders below a reference point.
// Identifiers with an index below depth are bound inside expr and count
// for nothing; index i at or above depth reaches i+1-depth slots out.
func LargestFreeVariable(expr Expression, depth int) int {
	switch e := expr.(type) {
	case *Literal:
		return 0

	case *Identifier:
		if e.Index < depth {
			return 0
		}

		return e.Index + 1 - depth

	case *Abstraction:
		return LargestFreeVariable(e.Body, depth+1)

	case *Application:
		return max(
			LargestFreeVariable(e.Abstraction, depth),
			LargestFreeVariable(e.Argument, depth),
		)

	default:
		return 0
	}
}
