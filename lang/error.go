package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ardnew/curry/lang/parser"
	"github.com/ardnew/curry/lang/scope"
	"github.com/ardnew/curry/lang/token"
	"github.com/ardnew/curry/pkg"
)

// Predefined errors (sentinel values).
var (
	ErrReadInput       = pkg.NewError("failed to read input")
	ErrBindingNotFound = pkg.NewError("binding not found")
)

// SourceError decorates a parse error or a free variable with the source
// text it occurred in.
type SourceError struct {
	Err    error
	Source string
	Pos    token.Position
}

// sourceError wraps err if it is a parse error or a free variable with a
// known position.
func sourceError(err error, source string) error {
	pos, ok := parser.Position(err)

	var fv *scope.FreeVariableError
	if !ok && errors.As(err, &fv) {
		pos, ok = fv.Pos, fv.Pos.IsValid()
	}

	if !ok {
		return err
	}

	return &SourceError{Err: err, Source: source, Pos: pos}
}

func (e *SourceError) Error() string {
	var sb strings.Builder

	if errors.Is(e.Err, scope.ErrFreeVariable) {
		sb.WriteString("resolve")
	} else {
		sb.WriteString("parse")
	}

	sb.WriteString(" error at line ")
	sb.WriteString(strconv.Itoa(e.Pos.Line))
	sb.WriteString(", column ")
	sb.WriteString(strconv.Itoa(e.Pos.Column))
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())

	if snippet := e.Snippet(); snippet != "" {
		sb.WriteByte('\n')
		sb.WriteString(snippet)
	}

	return sb.String()
}

func (e *SourceError) Unwrap() error { return e.Err }

// Snippet returns the offending source line prefixed by its line number,
// followed by a line with a caret under the error column.
func (e *SourceError) Snippet() string {
	lines := strings.Split(e.Source, "\n")
	if e.Pos.Line < 1 || e.Pos.Line > len(lines) {
		return ""
	}

	num := strconv.Itoa(e.Pos.Line)
	line := strings.TrimRight(lines[e.Pos.Line-1], "\r")

	// 2 leading spaces + " | "
	padding := strings.Repeat(" ", len(num)+5)
	if e.Pos.Column > 1 {
		padding += strings.Repeat(" ", e.Pos.Column-1)
	}

	return "  " + num + " | " + line + "\n" + padding + "^"
}

func (e *SourceError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", e.Err.Error()),
		slog.Int("line", e.Pos.Line),
		slog.Int("column", e.Pos.Column),
	)
}

// IsSyntax reports whether err is a parse error.
func IsSyntax(err error) bool { return errors.Is(err, parser.ErrSyntax) }
