package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/curry/cli/cmd/repl"
	"github.com/ardnew/curry/log"
	"github.com/ardnew/curry/pkg"
)

// Repl starts an interactive session seeded with the source files'
// bindings.
type Repl struct{}

// Run executes the repl command.
// The REPL reads keystrokes from stdin, so stdin may not also be a source.
func (r *Repl) Run(ctx context.Context) error {
	if src := sourceFilesFrom(ctx); src != nil && src.Stdin() != nil {
		return ErrStdinSource.With(slog.String("command", "repl"))
	}

	s, prog, err := loadSession(ctx)
	if err != nil {
		return pkg.WrapError(err).With(slog.String("command", "repl"))
	}

	var cacheDir string
	if ktx := kongContextFrom(ctx); ktx != nil {
		cacheDir = ktx.Model.Vars()[CacheIdentifier]
	}

	log.DebugContext(ctx, "starting repl",
		slog.Int("bindings", len(prog.Bindings)),
		slog.String("cache", cacheDir))

	return repl.Run(ctx, s, cacheDir, log.Default())
}
