package token

import (
	"slices"
	"testing"
)

func TestToken_Equality(t *testing.T) {
	tests := []struct {
		name string
		a, b Token
		want bool
	}{
		{"same keyword", Keyword("fun"), Fun, true},
		{"different keyword", Fun, Val, false},
		{"symbol vs keyword text", Symbol("="), Equal, false},
		{"payload-free kinds", Identifier, Token{Kind: KindIdentifier}, true},
		{"different kinds", Identifier, StringLiteral, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a == tt.b; got != tt.want {
				t.Errorf("%v == %v: got %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	got := slices.Collect(Keywords())
	want := []string{"def", "val", "fun", "->", "=", ";", "true", "false"}

	if !slices.Equal(got, want) {
		t.Errorf("Keywords() = %v, want %v", got, want)
	}

	for _, kw := range want {
		if !IsKeyword(kw) {
			t.Errorf("IsKeyword(%q) = false", kw)
		}
	}

	if IsKeyword("lambda") {
		t.Error(`IsKeyword("lambda") = true`)
	}
}

func TestLexeme_String(t *testing.T) {
	tests := []struct {
		lexeme Lexeme
		want   string
	}{
		{Lexeme{Token: Arrow}, `"->"`},
		{Lexeme{Token: ParenL}, `"("`},
		{Lexeme{Token: Identifier, Value: "foo"}, "identifier foo"},
		{Lexeme{Token: StringLiteral, Value: "a`b"}, "string literal \"a`b\""},
		{Lexeme{Token: NumericLiteral, Value: "1,000.5"}, "numeric literal 1,000.5"},
		{Lexeme{Token: UnclosedComment}, "unclosed comment"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.lexeme.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLexeme_Literal(t *testing.T) {
	if got := (Lexeme{Token: Fun}).Literal(); got != "fun" {
		t.Errorf("keyword literal = %q", got)
	}

	if got := (Lexeme{Token: Identifier, Value: "x"}).Literal(); got != "x" {
		t.Errorf("identifier literal = %q", got)
	}
}

func TestToken_IsAnomaly(t *testing.T) {
	for _, tok := range []Token{MalformedNumericLiteral, UnclosedComment, UnclosedString} {
		if !tok.IsAnomaly() {
			t.Errorf("%v.IsAnomaly() = false", tok)
		}
	}

	for _, tok := range []Token{Identifier, NumericLiteral, Fun, ParenL} {
		if tok.IsAnomaly() {
			t.Errorf("%v.IsAnomaly() = true", tok)
		}
	}
}

func TestPosition_String(t *testing.T) {
	if got := (Position{Line: 3, Column: 7}).String(); got != "3:7" {
		t.Errorf("String() = %q", got)
	}

	if got := (Position{}).String(); got != "-" {
		t.Errorf("zero String() = %q", got)
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindSymbol, "symbol"},
		{KindStringLiteral, "string literal"},
		{KindMalformedNumericLiteral, "malformed numeric literal"},
		{KindUnclosedString, "unclosed string"},
		{Kind(42), "Kind(42)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint8(tt.kind), got, tt.want)
		}
	}
}
