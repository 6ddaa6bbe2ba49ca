package repl

import "github.com/ardnew/curry/pkg"

// Sentinel errors.
var (
	ErrOutOfBounds = pkg.NewError("index out of range")
	ErrNoSession   = pkg.NewError("no session")
)
