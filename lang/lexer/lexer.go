// Package lexer converts curry source text into a sequence of lexemes.
//
// The lexer is a finite-state machine with one rune of lookahead. Each step
// offers the current rune (or end of input) to the active state, which may
// transition, emit a lexeme, or both, and decides whether the rune is
// consumed or re-offered to the next state.
//
// Lexing is total: malformed regions of input are reported as the anomaly
// tokens [token.UnclosedComment], [token.UnclosedString] and
// [token.MalformedNumericLiteral] rather than as errors.
package lexer

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/ardnew/curry/lang/token"
)

// state identifies the active state of the machine.
type state uint8

const (
	stateEmpty state = iota
	stateCommentOrParen
	stateComment
	stateIdentifier
	stateStringLiteral
	stateWhitespace
)

// mark is the one-rune lookback used to recognize comment delimiters.
type mark uint8

const (
	markIrrelevant mark = iota
	markStar
	markParenL
)

// Lexer produces lexemes from a source string on demand.
// A Lexer cannot be rewound; create a new one to lex the same text again.
type Lexer struct {
	src  string
	pos  token.Position // position of the next unread rune
	done bool

	state state
	start token.Position  // position of the first rune of the pending lexeme
	text  strings.Builder // accumulated identifier or string text
	level int             // comment nesting below the outermost comment
	prev  mark            // comment lookback
}

// New returns a lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src, pos: token.Position{Line: 1, Column: 1}}
}

// Next returns the next lexeme, or false once the input is exhausted.
// After returning false it keeps returning false.
func (l *Lexer) Next() (token.Lexeme, bool) {
	for !l.done {
		r, size := utf8.DecodeRuneInString(l.src[l.pos.Offset:])
		eof := size == 0

		lex, emit, consume := l.feed(r, eof)
		if consume && !eof {
			l.advance(r, size)
		}

		if emit {
			return lex, true
		}
	}

	return token.Lexeme{}, false
}

// All returns an iterator over the remaining lexemes.
func (l *Lexer) All() iter.Seq[token.Lexeme] {
	return func(yield func(token.Lexeme) bool) {
		for {
			lex, ok := l.Next()
			if !ok || !yield(lex) {
				return
			}
		}
	}
}

// Tokenize lexes all of src.
func Tokenize(src string) []token.Lexeme {
	var out []token.Lexeme
	for lex := range New(src).All() {
		out = append(out, lex)
	}

	return out
}

func (l *Lexer) advance(r rune, size int) {
	l.pos.Offset += size
	if r == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
}

// begin marks the current position as the start of a new lexeme.
func (l *Lexer) begin() {
	l.start = l.pos
	l.text.Reset()
}

// feed offers one rune to the active state. It reports the lexeme to emit,
// if any, and whether the rune was consumed.
func (l *Lexer) feed(r rune, eof bool) (lex token.Lexeme, emit, consume bool) {
	switch l.state {
	case stateEmpty:
		switch {
		case eof:
			l.done = true

		case r == '(':
			l.begin()
			l.state = stateCommentOrParen

			return lex, false, true

		case r == ')', r == '{', r == '}', r == '[', r == ']':
			return token.Lexeme{Token: token.Symbol(string(r)), Pos: l.pos}, true, true

		case isWhitespace(r):
			l.state = stateWhitespace

		case r == '`':
			l.begin()
			l.state = stateStringLiteral

			return lex, false, true

		default:
			l.begin()
			l.state = stateIdentifier
		}

		return lex, false, false

	case stateCommentOrParen:
		if !eof && r == '*' {
			l.state = stateComment
			l.level = 0
			l.prev = markIrrelevant

			return lex, false, true
		}

		l.state = stateEmpty

		return token.Lexeme{Token: token.ParenL, Pos: l.start}, true, false

	case stateComment:
		switch {
		case eof:
			l.state = stateEmpty

			return token.Lexeme{Token: token.UnclosedComment, Pos: l.start}, true, true

		case r == '*' && l.prev == markParenL:
			l.level++
			l.prev = markIrrelevant

		case r == '*':
			l.prev = markStar

		case r == ')' && l.prev == markStar:
			if l.level == 0 {
				l.state = stateEmpty
			} else {
				l.level--
				l.prev = markIrrelevant
			}

		case r == '(':
			l.prev = markParenL
		}

		return lex, false, true

	case stateIdentifier:
		if eof || isDelimiter(r) {
			l.state = stateEmpty

			return classify(l.text.String(), l.start), true, false
		}

		l.text.WriteRune(r)

		return lex, false, true

	case stateStringLiteral:
		switch {
		case eof:
			l.state = stateEmpty

			return token.Lexeme{
				Token: token.UnclosedString,
				Value: l.text.String(),
				Pos:   l.start,
			}, true, true

		case r == '`':
			if s := l.text.String(); strings.HasSuffix(s, `\`) {
				l.text.Reset()
				l.text.WriteString(s[:len(s)-1])
				l.text.WriteRune('`')

				return lex, false, true
			}

			l.state = stateEmpty

			return token.Lexeme{
				Token: token.StringLiteral,
				Value: l.text.String(),
				Pos:   l.start,
			}, true, true
		}

		l.text.WriteRune(r)

		return lex, false, true

	case stateWhitespace:
		if !eof && isWhitespace(r) {
			return lex, false, true
		}

		l.state = stateEmpty

		return lex, false, false
	}

	panic("lexer: unknown state")
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func isDelimiter(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '(', ')', '{', '}', '[', ']', '`':
		return true
	default:
		return false
	}
}

// numeric is the result of matching text against the numeric grammar.
type numeric uint8

const (
	numericNo numeric = iota
	numericYes
	numericMalformed
)

// classifyNumeric accepts text made only of digits, commas and dots.
// More than one dot makes it malformed.
func classifyNumeric(text string) numeric {
	dots := 0

	for _, r := range text {
		switch {
		case r == '.':
			dots++
		case r == ',', r >= '0' && r <= '9':
		default:
			return numericNo
		}
	}

	if dots > 1 {
		return numericMalformed
	}

	return numericYes
}

func classify(text string, pos token.Position) token.Lexeme {
	if token.IsKeyword(text) {
		return token.Lexeme{Token: token.Keyword(text), Pos: pos}
	}

	switch classifyNumeric(text) {
	case numericYes:
		return token.Lexeme{Token: token.NumericLiteral, Value: text, Pos: pos}
	case numericMalformed:
		return token.Lexeme{Token: token.MalformedNumericLiteral, Value: text, Pos: pos}
	default:
		return token.Lexeme{Token: token.Identifier, Value: text, Pos: pos}
	}
}
