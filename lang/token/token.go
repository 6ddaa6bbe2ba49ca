// Package token defines the lexical vocabulary of curry source text.
//
// A [Token] is a kind plus, for [Symbol] and [Keyword] tokens, the exact text
// that identifies it. Tokens are comparable with ==, which is how the parser
// matches an expected token against the input. A [Lexeme] pairs a token with
// the source text it was read from and the position where it starts.
package token

import (
	"iter"
	"strconv"
)

// Kind discriminates the variants of a [Token].
//
//go:generate go tool stringer --linecomment --type Kind --output kind_string.go
type Kind uint8

const (
	KindSymbol                  Kind = iota // symbol
	KindKeyword                             // keyword
	KindIdentifier                          // identifier
	KindStringLiteral                       // string literal
	KindNumericLiteral                      // numeric literal
	KindMalformedNumericLiteral             // malformed numeric literal
	KindUnclosedComment                     // unclosed comment
	KindUnclosedString                      // unclosed string
)

// Token is a lexical token. Text is set only for symbols and keywords.
type Token struct {
	Kind Kind
	Text string
}

// Payload-free tokens.
var (
	Identifier              = Token{Kind: KindIdentifier}
	StringLiteral           = Token{Kind: KindStringLiteral}
	NumericLiteral          = Token{Kind: KindNumericLiteral}
	MalformedNumericLiteral = Token{Kind: KindMalformedNumericLiteral}
	UnclosedComment         = Token{Kind: KindUnclosedComment}
	UnclosedString          = Token{Kind: KindUnclosedString}
)

// Symbol returns the punctuation token for text.
func Symbol(text string) Token { return Token{Kind: KindSymbol, Text: text} }

// Keyword returns the reserved-word token for text.
func Keyword(text string) Token { return Token{Kind: KindKeyword, Text: text} }

// Punctuation and reserved words.
var (
	ParenL   = Symbol("(")
	ParenR   = Symbol(")")
	BraceL   = Symbol("{")
	BraceR   = Symbol("}")
	BracketL = Symbol("[")
	BracketR = Symbol("]")

	Def   = Keyword("def")
	Val   = Keyword("val")
	Fun   = Keyword("fun")
	Arrow = Keyword("->")
	Equal = Keyword("=")
	Semi  = Keyword(";")
	True  = Keyword("true")
	False = Keyword("false")
)

var keywords = []string{"def", "val", "fun", "->", "=", ";", "true", "false"}

// Keywords returns an iterator over the reserved words in declaration order.
func Keywords() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, kw := range keywords {
			if !yield(kw) {
				return
			}
		}
	}
}

// IsKeyword reports whether text is a reserved word.
func IsKeyword(text string) bool {
	for _, kw := range keywords {
		if kw == text {
			return true
		}
	}

	return false
}

// IsAnomaly reports whether the token marks a malformed region of input.
func (t Token) IsAnomaly() bool {
	switch t.Kind {
	case KindMalformedNumericLiteral, KindUnclosedComment, KindUnclosedString:
		return true
	default:
		return false
	}
}

// String renders symbols and keywords as their quoted text and every other
// token as its kind name.
func (t Token) String() string {
	switch t.Kind {
	case KindSymbol, KindKeyword:
		return strconv.Quote(t.Text)
	default:
		return t.Kind.String()
	}
}

// Position is a location in source text. Offset counts bytes from the start
// of input; Line and Column are 1-based and Column counts runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

// IsValid reports whether the position was set by the lexer.
func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}

	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Lexeme is a token together with the source text it was derived from.
// Value is empty for symbols and keywords, whose text is implied by the
// token, and holds the unescaped contents of string literals.
type Lexeme struct {
	Token
	Value string
	Pos   Position
}

// Literal returns the source text the lexeme stands for.
func (l Lexeme) Literal() string {
	switch l.Kind {
	case KindSymbol, KindKeyword:
		return l.Token.Text
	default:
		return l.Value
	}
}

func (l Lexeme) String() string {
	switch l.Kind {
	case KindSymbol, KindKeyword, KindUnclosedComment:
		return l.Token.String()
	case KindStringLiteral, KindUnclosedString:
		return l.Kind.String() + " " + strconv.Quote(l.Value)
	default:
		return l.Kind.String() + " " + l.Value
	}
}
