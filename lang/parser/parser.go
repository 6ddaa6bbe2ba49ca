// Package parser builds surface syntax trees from curry source text.
//
// The grammar is parsed by recursive descent over a backtracking [Stream].
// Alternatives are tried in a fixed order, each inside a breakpoint, and the
// first one to succeed wins:
//
//	literal          := string_literal | boolean_literal | numeric_literal
//	boolean_literal  := "true" | "false"
//	expression_value := "(" expression ")" | abstraction | literal | identifier
//	expression       := expression_value expression_value*
//	abstraction      := "fun" identifier+ "->" expression
//	val_binding      := "val" identifier "=" expression ";"
//	def_binding      := "def" identifier "=" expression ";"
//	top_level        := val_binding | def_binding
//	program          := top_level*
//
// Juxtaposed values form an application of the first value to the rest.
// When every alternative of a rule fails, the rule reports an
// [ExpectedError] naming the rule; the failures of the individual
// alternatives are discarded.
package parser

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ardnew/curry/lang/ast"
	"github.com/ardnew/curry/lang/lexer"
	"github.com/ardnew/curry/lang/token"
	"github.com/ardnew/curry/log"
)

// Parser holds the grammar rules. Each exported rule method consumes the
// input it recognizes and leaves the stream positioned after it.
type Parser struct {
	stream *Stream
	ctx    context.Context
	logger log.Logger
}

// Option configures a [Parser].
type Option func(*Parser)

// WithLogger sets the logger used for trace output.
func WithLogger(logger log.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// New returns a parser reading lexemes from src.
func New(ctx context.Context, src Source, opts ...Option) *Parser {
	p := &Parser{ctx: ctx}
	for _, opt := range opts {
		opt(p)
	}

	p.stream = NewStream(ctx, src, p.logger)

	return p
}

// NewString returns a parser over source text.
func NewString(ctx context.Context, src string, opts ...Option) *Parser {
	return New(ctx, lexer.New(src), opts...)
}

// Stream returns the parser's token stream.
func (p *Parser) Stream() *Stream { return p.stream }

// ParseExpression parses src as a single expression spanning all input.
func ParseExpression(
	ctx context.Context,
	src string,
	opts ...Option,
) (ast.Expression, error) {
	p := NewString(ctx, src, opts...)

	expr, err := p.Expression()
	if err != nil {
		return nil, err
	}

	return expr, p.End()
}

// ParseTopLevel parses src as a single val or def binding spanning all input.
func ParseTopLevel(
	ctx context.Context,
	src string,
	opts ...Option,
) (ast.TopLevel, error) {
	p := NewString(ctx, src, opts...)

	tl, err := p.TopLevel()
	if err != nil {
		return nil, err
	}

	return tl, p.End()
}

// ParseProgram parses src as a sequence of bindings.
func ParseProgram(
	ctx context.Context,
	src string,
	opts ...Option,
) (ast.Program, error) {
	return NewString(ctx, src, opts...).Program()
}

// End succeeds only if all input has been read.
func (p *Parser) End() error {
	if lex, ok := p.stream.Peek(); ok {
		return &TrailingInputError{Found: lex}
	}

	return nil
}

// Program parses bindings until the input is exhausted.
func (p *Parser) Program() (ast.Program, error) {
	var prog ast.Program

	for !p.stream.AtEnd() {
		tl, err := p.TopLevel()
		if err != nil {
			return ast.Program{}, err
		}

		prog.Bindings = append(prog.Bindings, tl)
	}

	p.logger.TraceContext(p.ctx, "parsed program",
		slog.Int("bindings", len(prog.Bindings)),
		slog.Int("lexemes", p.stream.Buffered()))

	return prog, nil
}

// TopLevel parses a val or def binding.
func (p *Parser) TopLevel() (ast.TopLevel, error) {
	return oneOf(p, NodeDeclaration,
		func() (ast.TopLevel, error) { return p.ValBinding() },
		func() (ast.TopLevel, error) { return p.DefBinding() },
	)
}

// ValBinding parses `val name = expression ;`.
func (p *Parser) ValBinding() (ast.ValBinding, error) {
	name, value, err := p.binding(token.Val)

	return ast.ValBinding{Name: name, Value: value}, err
}

// DefBinding parses `def name = expression ;`.
func (p *Parser) DefBinding() (ast.DefBinding, error) {
	name, value, err := p.binding(token.Def)

	return ast.DefBinding{Name: name, Value: value}, err
}

func (p *Parser) binding(keyword token.Token) (ast.Identifier, ast.Expression, error) {
	if _, err := p.stream.Expect(keyword); err != nil {
		return ast.Identifier{}, nil, err
	}

	name, err := p.Identifier()
	if err != nil {
		return ast.Identifier{}, nil, err
	}

	if _, err := p.stream.Expect(token.Equal); err != nil {
		return ast.Identifier{}, nil, err
	}

	value, err := p.Expression()
	if err != nil {
		return ast.Identifier{}, nil, err
	}

	if _, err := p.stream.Expect(token.Semi); err != nil {
		return ast.Identifier{}, nil, err
	}

	return name, value, nil
}

// Expression parses one value followed by any number of juxtaposed
// argument values.
func (p *Parser) Expression() (ast.Expression, error) {
	head, err := p.ExpressionValue()
	if err != nil {
		return nil, err
	}

	var args []ast.Expression

	for {
		arg, err := attempt(p.stream, p.ExpressionValue)
		if err != nil {
			break
		}

		args = append(args, arg)
	}

	if len(args) == 0 {
		return head, nil
	}

	return ast.Application{Abstraction: head, Arguments: args}, nil
}

// ExpressionValue parses a parenthesized expression, an abstraction, a
// literal or an identifier.
func (p *Parser) ExpressionValue() (ast.Expression, error) {
	return oneOf(p, NodeExpression,
		p.parenthesized,
		func() (ast.Expression, error) { return p.Abstraction() },
		func() (ast.Expression, error) { return p.Literal() },
		func() (ast.Expression, error) { return p.Identifier() },
	)
}

func (p *Parser) parenthesized() (ast.Expression, error) {
	if _, err := p.stream.Expect(token.ParenL); err != nil {
		return nil, err
	}

	expr, err := p.Expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.stream.Expect(token.ParenR); err != nil {
		return nil, err
	}

	return expr, nil
}

// Abstraction parses `fun` followed by one or more parameters, `->` and
// the body expression.
func (p *Parser) Abstraction() (ast.Abstraction, error) {
	if _, err := p.stream.Expect(token.Fun); err != nil {
		return ast.Abstraction{}, err
	}

	first, err := p.Identifier()
	if err != nil {
		return ast.Abstraction{}, err
	}

	params := []ast.Identifier{first}

	for {
		param, err := attempt(p.stream, p.Identifier)
		if err != nil {
			break
		}

		params = append(params, param)
	}

	if _, err := p.stream.Expect(token.Arrow); err != nil {
		return ast.Abstraction{}, err
	}

	body, err := p.Expression()
	if err != nil {
		return ast.Abstraction{}, err
	}

	return ast.Abstraction{Parameters: params, Body: body}, nil
}

// Identifier parses a single identifier.
func (p *Parser) Identifier() (ast.Identifier, error) {
	lex, err := p.stream.Expect(token.Identifier)
	if err != nil {
		return ast.Identifier{}, err
	}

	return ast.Identifier{Name: lex.Value, Pos: lex.Pos}, nil
}

// Literal parses a string, boolean or numeric literal.
func (p *Parser) Literal() (ast.Literal, error) {
	return oneOf(p, NodeLiteral,
		func() (ast.Literal, error) { return p.StringLiteral() },
		func() (ast.Literal, error) { return p.BooleanLiteral() },
		func() (ast.Literal, error) { return p.NumericLiteral() },
	)
}

// StringLiteral parses a backtick-delimited string.
func (p *Parser) StringLiteral() (ast.StringLiteral, error) {
	lex, err := p.stream.Expect(token.StringLiteral)
	if err != nil {
		return ast.StringLiteral{}, err
	}

	return ast.StringLiteral{Value: lex.Value}, nil
}

// BooleanLiteral parses `true` or `false`.
func (p *Parser) BooleanLiteral() (ast.BooleanLiteral, error) {
	keyword := func(tok token.Token, value bool) func() (ast.BooleanLiteral, error) {
		return func() (ast.BooleanLiteral, error) {
			if _, err := p.stream.Expect(tok); err != nil {
				return ast.BooleanLiteral{}, err
			}

			return ast.BooleanLiteral{Value: value}, nil
		}
	}

	return oneOf(p, NodeBooleanLiteral,
		keyword(token.True, true),
		keyword(token.False, false),
	)
}

// NumericLiteral parses a number. Comma separators are ignored.
func (p *Parser) NumericLiteral() (ast.NumericLiteral, error) {
	lex, err := p.stream.Expect(token.NumericLiteral)
	if err != nil {
		return ast.NumericLiteral{}, err
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(lex.Value, ",", ""), 64)
	if err != nil {
		return ast.NumericLiteral{}, &InvalidNumberError{Lexeme: lex, Err: err}
	}

	return ast.NumericLiteral{Value: v}, nil
}

// oneOf tries each alternative inside its own breakpoint and returns the
// first success. If all fail, the cursor is back where it started and the
// result is an [ExpectedError] for node.
func oneOf[T any](p *Parser, node NodeType, alts ...func() (T, error)) (T, error) {
	for i, alt := range alts {
		out, err := attempt(p.stream, alt)
		if err == nil {
			return out, nil
		}

		p.logger.TraceContext(p.ctx, "alternative failed",
			slog.String("rule", node.String()),
			slog.Int("alternative", i),
			slog.Any("error", err))
	}

	var zero T

	lex, ok := p.stream.Peek()
	if !ok {
		return zero, &ExpectedError{Node: node, AtEnd: true}
	}

	return zero, &ExpectedError{Node: node, Found: lex}
}
