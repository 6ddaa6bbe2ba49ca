// Package ast defines the surface syntax tree produced by the parser.
//
// Surface nodes keep the shape of the source: an [Abstraction] lists all of
// its parameters and an [Application] lists all of its arguments. The scope
// resolver later curries both into single-binder and single-argument nodes.
//
// Every node prints back to source syntax with String. Printing then
// reparsing yields an equivalent tree.
package ast

import (
	"strconv"
	"strings"

	"github.com/ardnew/curry/lang/token"
)

// Expression is any surface expression node.
type Expression interface {
	expression()
	String() string
}

// Literal is a constant expression. Literal nodes are shared with the
// De Bruijn tree.
type Literal interface {
	Expression
	literal()
}

// StringLiteral is a backtick-delimited string constant.
type StringLiteral struct{ Value string }

// NumericLiteral is a number constant.
type NumericLiteral struct{ Value float64 }

// BooleanLiteral is true or false.
type BooleanLiteral struct{ Value bool }

// Identifier is a reference to a bound name, or a binder in an abstraction
// parameter list. Pos is where it appears in the source, if it was parsed.
type Identifier struct {
	Name string
	Pos  token.Position
}

// Abstraction is an anonymous function of one or more parameters.
type Abstraction struct {
	Parameters []Identifier
	Body       Expression
}

// Application applies a function expression to one or more arguments,
// left to right.
type Application struct {
	Abstraction Expression
	Arguments   []Expression
}

func (StringLiteral) expression()  {}
func (NumericLiteral) expression() {}
func (BooleanLiteral) expression() {}
func (Identifier) expression()     {}
func (Abstraction) expression()    {}
func (Application) expression()    {}

func (StringLiteral) literal()  {}
func (NumericLiteral) literal() {}
func (BooleanLiteral) literal() {}

func (l StringLiteral) String() string {
	return "`" + strings.ReplaceAll(l.Value, "`", "\\`") + "`"
}

func (l NumericLiteral) String() string {
	return FormatNumber(l.Value)
}

func (l BooleanLiteral) String() string {
	return strconv.FormatBool(l.Value)
}

func (i Identifier) String() string { return i.Name }

func (a Abstraction) String() string {
	var sb strings.Builder

	sb.WriteString("fun")

	for _, p := range a.Parameters {
		sb.WriteByte(' ')
		sb.WriteString(p.Name)
	}

	sb.WriteString(" -> ")
	sb.WriteString(a.Body.String())

	return sb.String()
}

func (a Application) String() string {
	var sb strings.Builder

	switch a.Abstraction.(type) {
	case Abstraction, Application:
		sb.WriteString("(" + a.Abstraction.String() + ")")
	default:
		sb.WriteString(a.Abstraction.String())
	}

	for _, arg := range a.Arguments {
		sb.WriteByte(' ')

		switch arg.(type) {
		case Abstraction, Application:
			sb.WriteString("(" + arg.String() + ")")
		default:
			sb.WriteString(arg.String())
		}
	}

	return sb.String()
}

// FormatNumber renders a number the way the lexer reads it back: plain
// decimal notation without an exponent.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
