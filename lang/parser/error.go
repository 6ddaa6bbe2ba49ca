package parser

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ardnew/curry/lang/token"
	"github.com/ardnew/curry/pkg"
)

// ErrSyntax is matched by every error the parser returns.
var ErrSyntax = pkg.NewError("syntax error")

// NodeType names a grammar rule in [ExpectedError].
//
//go:generate go tool stringer --linecomment --type NodeType --output nodetype_string.go
type NodeType uint8

const (
	NodeLiteral        NodeType = iota // literal
	NodeBooleanLiteral                 // boolean literal
	NodeExpression                     // expression
	NodeDeclaration                    // declaration
)

// UnexpectedEndOfInputError reports that input ended where a token was
// required.
type UnexpectedEndOfInputError struct {
	Expected token.Token
	Pos      token.Position // position of the last lexeme read
}

func (e *UnexpectedEndOfInputError) Error() string {
	return "unexpected end of input, expected " + e.Expected.String()
}

func (e *UnexpectedEndOfInputError) Unwrap() error { return ErrSyntax }

func (e *UnexpectedEndOfInputError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "unexpected end of input"),
		slog.String("expected", e.Expected.String()),
	)
}

// UnexpectedTokenError reports a lexeme whose token differs from the one
// the grammar required.
type UnexpectedTokenError struct {
	Expected token.Token
	Actual   token.Lexeme
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected %v, expected %v", e.Actual, e.Expected)
}

func (e *UnexpectedTokenError) Unwrap() error { return ErrSyntax }

func (e *UnexpectedTokenError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "unexpected token"),
		slog.String("expected", e.Expected.String()),
		slog.String("actual", e.Actual.String()),
		slog.String("pos", e.Actual.Pos.String()),
	)
}

// ExpectedError reports that every alternative of a grammar rule failed.
// The individual failures are not retained. Found is the lexeme where the
// alternatives were tried; AtEnd is set when there was none.
type ExpectedError struct {
	Node  NodeType
	Found token.Lexeme
	AtEnd bool
}

func (e *ExpectedError) Error() string {
	if e.AtEnd {
		return fmt.Sprintf("expected %v at end of input", e.Node)
	}

	return fmt.Sprintf("expected %v, found %v", e.Node, e.Found)
}

func (e *ExpectedError) Unwrap() error { return ErrSyntax }

func (e *ExpectedError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("error", "expected "+e.Node.String()),
	}

	if !e.AtEnd {
		attrs = append(attrs,
			slog.String("found", e.Found.String()),
			slog.String("pos", e.Found.Pos.String()))
	}

	return slog.GroupValue(attrs...)
}

// InvalidNumberError reports numeric literal text that matches the lexical
// number grammar but does not denote a number, such as ".".
//
// Only direct callers of [Parser.NumericLiteral] see it. Inside an
// expression the literal is one alternative among several, so the failure
// surfaces as an [ExpectedError] found at the same lexeme.
type InvalidNumberError struct {
	Lexeme token.Lexeme
	Err    error
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number %q: %v", e.Lexeme.Value, e.Err)
}

func (e *InvalidNumberError) Unwrap() []error { return []error{ErrSyntax, e.Err} }

func (e *InvalidNumberError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "invalid number"),
		slog.String("text", e.Lexeme.Value),
		slog.String("pos", e.Lexeme.Pos.String()),
	)
}

// TrailingInputError reports input left over after a complete parse.
type TrailingInputError struct {
	Found token.Lexeme
}

func (e *TrailingInputError) Error() string {
	return fmt.Sprintf("unexpected %v, expected end of input", e.Found)
}

func (e *TrailingInputError) Unwrap() error { return ErrSyntax }

func (e *TrailingInputError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "trailing input"),
		slog.String("found", e.Found.String()),
		slog.String("pos", e.Found.Pos.String()),
	)
}

// Position returns the source position an error refers to, if any.
func Position(err error) (token.Position, bool) {
	var (
		eoi      *UnexpectedEndOfInputError
		tok      *UnexpectedTokenError
		expected *ExpectedError
		number   *InvalidNumberError
		trailing *TrailingInputError
	)

	switch {
	case errors.As(err, &eoi):
		return eoi.Pos, eoi.Pos.IsValid()
	case errors.As(err, &tok):
		return tok.Actual.Pos, true
	case errors.As(err, &expected):
		return expected.Found.Pos, !expected.AtEnd
	case errors.As(err, &number):
		return number.Lexeme.Pos, true
	case errors.As(err, &trailing):
		return trailing.Found.Pos, true
	default:
		return token.Position{}, false
	}
}
