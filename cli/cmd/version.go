package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/curry/pkg"
)

// Version prints the interpreter version.
type Version struct{}

// Run executes the version command.
func (Version) Run(ctx context.Context) error {
	_, err := fmt.Fprintf(outputFrom(ctx), "%s version %s\n", pkg.Name, pkg.Version())

	return err
}
