package parser

import (
	"context"
	"log/slog"

	"github.com/ardnew/curry/lang/token"
	"github.com/ardnew/curry/log"
)

// Source produces lexemes one at a time. [lexer.Lexer] is a Source.
type Source interface {
	Next() (token.Lexeme, bool)
}

// Stream is a backtracking view of a [Source].
//
// Lexemes pulled from the source are appended to a buffer that is never
// truncated, and reading advances a cursor over that buffer. The source is
// consulted only when the cursor reaches the end of the buffer, so rewinding
// with [Stream.Breakpoint] never lexes the same text twice.
type Stream struct {
	src       Source
	buf       []token.Lexeme
	cursor    int
	exhausted bool
	end       token.Position

	ctx    context.Context
	logger log.Logger
}

// NewStream returns a stream reading from src.
func NewStream(ctx context.Context, src Source, logger log.Logger) *Stream {
	return &Stream{src: src, ctx: ctx, logger: logger}
}

// fill pulls from the source until the buffer holds index i, and reports
// whether it does.
func (s *Stream) fill(i int) bool {
	for len(s.buf) <= i && !s.exhausted {
		lex, ok := s.src.Next()
		if !ok {
			s.exhausted = true

			s.logger.TraceContext(s.ctx, "source exhausted",
				slog.Int("buffered", len(s.buf)))

			break
		}

		s.buf = append(s.buf, lex)
		s.end = lex.Pos

		s.logger.TraceContext(s.ctx, "pulled lexeme",
			slog.String("lexeme", lex.String()),
			slog.String("pos", lex.Pos.String()),
			slog.Int("index", len(s.buf)-1))
	}

	return i < len(s.buf)
}

// Next returns the lexeme under the cursor and advances past it.
// It returns false at end of input without moving the cursor.
func (s *Stream) Next() (token.Lexeme, bool) {
	if !s.fill(s.cursor) {
		return token.Lexeme{}, false
	}

	lex := s.buf[s.cursor]
	s.cursor++

	return lex, true
}

// Peek returns the lexeme under the cursor without advancing.
func (s *Stream) Peek() (token.Lexeme, bool) {
	if !s.fill(s.cursor) {
		return token.Lexeme{}, false
	}

	return s.buf[s.cursor], true
}

// Cursor returns the index of the next lexeme to be read.
func (s *Stream) Cursor() int { return s.cursor }

// Buffered returns the number of lexemes pulled from the source so far.
func (s *Stream) Buffered() int { return len(s.buf) }

// AtEnd reports whether every lexeme of the source has been read.
func (s *Stream) AtEnd() bool { return !s.fill(s.cursor) }

// Position returns the position of the lexeme under the cursor, or of the
// last lexeme when the input is exhausted.
func (s *Stream) Position() token.Position {
	if lex, ok := s.Peek(); ok {
		return lex.Pos
	}

	return s.end
}

// Breakpoint runs fn and, only if it fails, rewinds the cursor to where it
// was before fn ran. The buffer is kept, so replayed lexemes are not lexed
// again. Breakpoints nest: each restores only its own snapshot.
func (s *Stream) Breakpoint(fn func() error) error {
	mark := s.cursor

	err := fn()
	if err != nil && s.cursor != mark {
		s.logger.TraceContext(s.ctx, "rewind",
			slog.Int("from", s.cursor),
			slog.Int("to", mark))

		s.cursor = mark
	}

	return err
}

// Expect reads the next lexeme and returns it if its token equals want.
// On a mismatch the lexeme stays consumed; the enclosing breakpoint is
// responsible for rewinding.
func (s *Stream) Expect(want token.Token) (token.Lexeme, error) {
	lex, ok := s.Next()
	if !ok {
		return lex, &UnexpectedEndOfInputError{Expected: want, Pos: s.end}
	}

	if lex.Token != want {
		return lex, &UnexpectedTokenError{Expected: want, Actual: lex}
	}

	return lex, nil
}

// attempt runs fn inside a breakpoint and returns its result.
func attempt[T any](s *Stream, fn func() (T, error)) (T, error) {
	var out T

	err := s.Breakpoint(func() error {
		var err error

		out, err = fn()

		return err
	})

	return out, err
}
