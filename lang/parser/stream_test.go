package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/ardnew/curry/lang/lexer"
	"github.com/ardnew/curry/lang/token"
)

// countingSource records how many lexemes were pulled from the lexer.
type countingSource struct {
	*lexer.Lexer
	pulls int
}

func (c *countingSource) Next() (token.Lexeme, bool) {
	lex, ok := c.Lexer.Next()
	if ok {
		c.pulls++
	}

	return lex, ok
}

var errFail = errors.New("fail")

func TestStream_BreakpointRewindsWithoutRelexing(t *testing.T) {
	src := &countingSource{Lexer: lexer.New("a b c")}
	s := NewStream(context.Background(), src, testLogger())

	err := s.Breakpoint(func() error {
		s.Next()
		s.Next()
		s.Next()

		return errFail
	})
	if !errors.Is(err, errFail) {
		t.Fatalf("Breakpoint returned %v", err)
	}

	if s.Cursor() != 0 {
		t.Fatalf("cursor = %d after failed breakpoint, want 0", s.Cursor())
	}

	for _, want := range []string{"a", "b", "c"} {
		lex, ok := s.Next()
		if !ok || lex.Value != want {
			t.Fatalf("Next() = %v, %v; want %s", lex, ok, want)
		}
	}

	if src.pulls != 3 {
		t.Errorf("lexer pulled %d times, want 3", src.pulls)
	}
}

func TestStream_BreakpointKeepsProgressOnSuccess(t *testing.T) {
	s := NewStream(context.Background(), lexer.New("a b"), testLogger())

	if err := s.Breakpoint(func() error {
		_, err := s.Expect(token.Identifier)

		return err
	}); err != nil {
		t.Fatal(err)
	}

	if s.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", s.Cursor())
	}
}

func TestStream_NestedBreakpoints(t *testing.T) {
	s := NewStream(context.Background(), lexer.New("a b c d"), testLogger())

	err := s.Breakpoint(func() error {
		s.Next() // a

		inner := s.Breakpoint(func() error {
			s.Next() // b
			s.Next() // c

			return errFail
		})
		if inner == nil {
			t.Fatal("inner breakpoint succeeded")
		}

		if s.Cursor() != 1 {
			t.Errorf("cursor = %d after inner rewind, want 1", s.Cursor())
		}

		s.Next() // b

		return errFail
	})
	if err == nil {
		t.Fatal("outer breakpoint succeeded")
	}

	if s.Cursor() != 0 {
		t.Errorf("cursor = %d after outer rewind, want 0", s.Cursor())
	}

	if s.Buffered() != 3 {
		t.Errorf("buffered = %d, want 3", s.Buffered())
	}
}

func TestStream_Expect(t *testing.T) {
	s := NewStream(context.Background(), lexer.New("fun x"), testLogger())

	if _, err := s.Expect(token.Fun); err != nil {
		t.Fatalf("Expect(fun): %v", err)
	}

	_, err := s.Expect(token.Arrow)

	var unexpected *UnexpectedTokenError
	if !errors.As(err, &unexpected) {
		t.Fatalf("Expect(->) = %v, want UnexpectedTokenError", err)
	}

	if unexpected.Expected != token.Arrow || unexpected.Actual.Value != "x" {
		t.Errorf("got %+v", unexpected)
	}

	// The mismatched lexeme is consumed; rewinding is the caller's job.
	if s.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", s.Cursor())
	}

	_, err = s.Expect(token.Semi)

	var eoi *UnexpectedEndOfInputError
	if !errors.As(err, &eoi) || eoi.Expected != token.Semi {
		t.Errorf("Expect at end = %v, want UnexpectedEndOfInputError", err)
	}

	if !s.AtEnd() {
		t.Error("AtEnd() = false after consuming all input")
	}
}

func TestStream_PeekDoesNotAdvance(t *testing.T) {
	s := NewStream(context.Background(), lexer.New("x"), testLogger())

	for range 2 {
		lex, ok := s.Peek()
		if !ok || lex.Value != "x" {
			t.Fatalf("Peek() = %v, %v", lex, ok)
		}
	}

	if s.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", s.Cursor())
	}
}
