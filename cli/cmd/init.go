package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/curry/lang/ast"
	"github.com/ardnew/curry/log"
	"github.com/ardnew/curry/profile"
)

// configHeader is written above the generated bindings.
const configHeader = "(* curry configuration *)\n"

// Init generates a configuration file binding the current flag values.
type Init struct {
	Force  bool `help:"Overwrite existing configuration file"`
	Stdout bool `help:"Write the configuration to stdout instead of a file"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	prog := i.buildProgram(ctx)

	if i.Stdout {
		return writeConfig(outputFrom(ctx), prog)
	}

	ktx := kongContextFrom(ctx)

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	file, err := os.Create(confPath)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}
	defer file.Close()

	if err := writeConfig(file, prog); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
		slog.Int("bindings", len(prog.Bindings)),
	)

	return nil
}

func writeConfig(w io.Writer, prog ast.Program) error {
	_, err := io.WriteString(w, configHeader+prog.String())

	return err
}

// buildProgram binds each configurable flag to its current value.
func (i *Init) buildProgram(ctx context.Context) ast.Program {
	ktx := kongContextFrom(ctx)

	var prog ast.Program

	prefixIgnore := []string{"help", "version", "source", profile.Tag}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(prefixIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		val := flagValue(ktx, flag)
		if val == nil {
			continue
		}

		prog.Bindings = append(prog.Bindings, ast.ValBinding{
			Name:  ast.Identifier{Name: configName(flag.Name)},
			Value: val,
		})
	}

	return prog
}

// configName converts a flag name to the identifier bound in configuration.
func configName(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

// flagValue returns the literal for a flag's current value, or nil if the
// flag is unset or has no literal form.
func flagValue(ktx *kong.Context, flag *kong.Flag) ast.Literal {
	val := ktx.FlagValue(flag)
	if val == nil {
		return nil
	}

	switch v := val.(type) {
	case bool:
		return ast.BooleanLiteral{Value: v}

	case string:
		if v == "" {
			return nil
		}

		return ast.StringLiteral{Value: v}

	case int:
		return ast.NumericLiteral{Value: float64(v)}

	case int64:
		return ast.NumericLiteral{Value: float64(v)}

	case uint:
		return ast.NumericLiteral{Value: float64(v)}

	case float64:
		return ast.NumericLiteral{Value: v}

	case []string, []int, []bool:
		return nil

	default:
		s := fmt.Sprint(v)
		if s == "" {
			return nil
		}

		return ast.StringLiteral{Value: s}
	}
}
