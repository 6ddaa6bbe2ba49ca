// Package cmd implements the curry subcommands.
//
// Commands read their program from the source files stored in the context
// by [WithSourceFiles], evaluate with the options stored by [WithOptions],
// and write to the writer stored by [WithOutput] (stdout by default).
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path
	// to the native configuration file.
	ConfigIdentifier = "config"
)
