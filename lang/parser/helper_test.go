package parser

import (
	"os"

	"github.com/ardnew/curry/lang/ast"
	"github.com/ardnew/curry/log"
)

// testLogger returns the logger used by tests. Set CURRY_TEST_TRACE to see
// stream and rule traces.
func testLogger() log.Logger {
	if os.Getenv("CURRY_TEST_TRACE") == "" {
		return log.Logger{}
	}

	return log.Make(os.Stderr, log.WithLevel(log.LevelTrace), log.WithFormat(log.FormatText))
}

// unplaced returns a copy of node with every identifier position cleared,
// so parsed trees compare equal to trees built by hand.
func unplaced[T any](node T) T {
	var strip func(any) any

	strip = func(n any) any {
		switch n := n.(type) {
		case ast.Identifier:
			return ast.Identifier{Name: n.Name}
		case ast.Abstraction:
			params := make([]ast.Identifier, len(n.Parameters))
			for i, p := range n.Parameters {
				params[i] = ast.Identifier{Name: p.Name}
			}

			return ast.Abstraction{Parameters: params, Body: strip(n.Body).(ast.Expression)}
		case ast.Application:
			args := make([]ast.Expression, len(n.Arguments))
			for i, a := range n.Arguments {
				args[i] = strip(a).(ast.Expression)
			}

			return ast.Application{Abstraction: strip(n.Abstraction).(ast.Expression), Arguments: args}
		case ast.ValBinding:
			return ast.ValBinding{Name: ast.Identifier{Name: n.Name.Name}, Value: strip(n.Value).(ast.Expression)}
		case ast.DefBinding:
			return ast.DefBinding{Name: ast.Identifier{Name: n.Name.Name}, Value: strip(n.Value).(ast.Expression)}
		case ast.Program:
			bindings := make([]ast.TopLevel, len(n.Bindings))
			for i, b := range n.Bindings {
				bindings[i] = strip(b).(ast.TopLevel)
			}

			return ast.Program{Bindings: bindings}
		default:
			return n
		}
	}

	return strip(node).(T)
}
