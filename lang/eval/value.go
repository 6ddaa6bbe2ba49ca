package eval

import (
	"strconv"
	"strings"

	"github.com/ardnew/curry/lang/ast"
	"github.com/ardnew/curry/lang/debruijn"
)

// Value is the result of evaluating an expression.
type Value interface {
	value()
	String() string
}

type (
	// String is a text value.
	String string
	// Bool is a boolean value.
	Bool bool
	// Number is a numeric value.
	Number float64
)

// Closure is a function value. Captured holds the stack entries the body
// can reach beyond its own parameter, outermost first.
type Closure struct {
	Captured []Value
	Body     debruijn.Expression
}

func (String) value()   {}
func (Bool) value()     {}
func (Number) value()   {}
func (*Closure) value() {}

func (s String) String() string {
	return "`" + strings.ReplaceAll(string(s), "`", "\\`") + "`"
}

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

func (n Number) String() string { return ast.FormatNumber(float64(n)) }

func (c *Closure) String() string {
	return "<closure/" + strconv.Itoa(len(c.Captured)) + ">"
}

// FromLiteral converts a literal to its value.
func FromLiteral(lit ast.Literal) Value {
	switch l := lit.(type) {
	case ast.StringLiteral:
		return String(l.Value)
	case ast.NumericLiteral:
		return Number(l.Value)
	case ast.BooleanLiteral:
		return Bool(l.Value)
	default:
		panic(fault("unknown literal type", nil))
	}
}

// Native converts v to a plain Go value: string, bool, float64, or, for
// closures, the closure's printed form.
func Native(v Value) any {
	switch v := v.(type) {
	case String:
		return string(v)
	case Bool:
		return bool(v)
	case Number:
		return float64(v)
	default:
		return v.String()
	}
}
