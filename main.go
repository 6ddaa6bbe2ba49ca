package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/curry/cli"
	"github.com/ardnew/curry/lang"
	"github.com/ardnew/curry/log"
)

func main() {
	ctx := context.Background()

	if err := cli.Run(ctx, os.Exit, os.Args[1:]...); err != nil {
		report(ctx, os.Stderr, err)
		os.Exit(1)
	}
}

// report describes err once. Source errors are printed to w with their
// snippet; everything else goes through the default logger.
func report(ctx context.Context, w io.Writer, err error) {
	var se *lang.SourceError
	if errors.As(err, &se) {
		fmt.Fprintln(w, se.Error())

		return
	}

	log.ErrorContext(ctx, "run failed", slog.Any("error", err))
}
