package log_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/curry/log"
)

func Example_basic() {
	logger := log.Make(os.Stdout, log.WithPretty(false), log.WithTimeLayout("none"))
	logger.InfoContext(context.Background(), "session started",
		slog.String("source", "prelude.curry"))
	// Output: {"level":"INFO","msg":"session started","source":"prelude.curry"}
}

func Example_stage() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelTrace),
		log.WithFormat(log.FormatText),
		log.WithPretty(false),
		log.WithTimeLayout("none"))

	ctx := context.Background()
	scope := logger.Stage("scope")
	scope.DebugContext(ctx, "push binders", slog.Int("count", 2))
	scope.WarnContext(ctx, "free variable", slog.String("name", "foo"))
	// Output:
	// level=DEBUG msg="push binders" stage=scope count=2
	// level=WARN msg="free variable" stage=scope name=foo
}
