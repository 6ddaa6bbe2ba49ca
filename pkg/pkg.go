//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// Version is the semantic version of the curry module embedded at build time.
// It is printed by the CLI when users invoke the version subcommand.
//
//go:embed VERSION
var version string

// Version returns the embedded version with surrounding whitespace removed.
func Version() string { return strings.TrimSpace(version) }

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "curry"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Interpreter for a small curried lambda language"
	// Extension is the file extension of curry source files.
	Extension = ".curry"
)
