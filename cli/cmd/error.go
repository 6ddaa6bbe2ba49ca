package cmd

import "github.com/ardnew/curry/pkg"

// Sentinel errors.
var (
	ErrJSONMarshal    = pkg.NewError("marshal JSON")
	ErrYAMLMarshal    = pkg.NewError("marshal YAML")
	ErrWriteConfig    = pkg.NewError("write configuration file")
	ErrFileExists     = pkg.NewError("file exists (use --force to overwrite)")
	ErrNoBindings     = pkg.NewError("program has no bindings")
	ErrConflictingArg = pkg.NewError("conflicting arguments")
	ErrStdinSource    = pkg.NewError("stdin cannot be both a source and the terminal")
)
