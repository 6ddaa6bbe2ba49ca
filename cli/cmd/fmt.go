package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/curry/lang"
	"github.com/ardnew/curry/lang/lexer"
	"github.com/ardnew/curry/pkg"
)

// Fmt parses a program and writes it in the chosen format.
type Fmt struct {
	Native   Native   `cmd:"" default:"withargs" help:"Format as canonical curry syntax (default)."`
	JSON     JSON     `cmd:""                    help:"Format the syntax tree as JSON."`
	YAML     YAML     `cmd:""                    help:"Format the syntax tree as YAML."`
	Tokens   Tokens   `cmd:""                    help:"List the lexemes of the source."`
	DeBruijn DeBruijn `cmd:"" name:"debruijn"    help:"Print each binding in De Bruijn form."`
}

// SourceArg is the optional source file argument shared by the formats.
// Without it, the global source files are read.
type SourceArg struct {
	Source string `arg:"" help:"Source input file or '-' for stdin." name:"file" optional:"" type:"existingfile"`
}

func (f SourceArg) withSource(ctx context.Context) context.Context {
	if f.Source == "" {
		return ctx
	}

	return WithSourceFiles(ctx, []string{f.Source})
}

func (f SourceArg) program(ctx context.Context, format string) (*lang.Program, error) {
	prog, err := loadProgram(f.withSource(ctx))
	if err != nil {
		return nil, pkg.WrapError(err).With(slog.String("format", format))
	}

	return prog, nil
}

// Native formats input as canonical curry syntax.
type Native struct {
	SourceArg `embed:""`
}

// Run executes the native format command.
func (n *Native) Run(ctx context.Context) error {
	prog, err := n.program(ctx, "native")
	if err != nil {
		return err
	}

	return prog.Format(outputFrom(ctx))
}

// JSON formats the syntax tree as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	SourceArg `embed:""`
}

// Run executes the json format command.
func (j *JSON) Run(ctx context.Context) error {
	prog, err := j.program(ctx, "json")
	if err != nil {
		return err
	}

	if err := lang.EncodeJSON(outputFrom(ctx), prog, j.Indent); err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	return nil
}

// YAML formats the syntax tree as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	SourceArg `embed:""`
}

// Run executes the yaml format command.
func (y *YAML) Run(ctx context.Context) error {
	prog, err := y.program(ctx, "yaml")
	if err != nil {
		return err
	}

	if err := lang.EncodeYAML(ctx, outputFrom(ctx), prog, y.Indent); err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	return nil
}

// Tokens lists the lexemes of the source, one per line, with positions.
// Input that does not parse is listed too.
type Tokens struct {
	SourceArg `embed:""`
}

// Run executes the tokens command.
func (t *Tokens) Run(ctx context.Context) error {
	src := sourceFilesFrom(t.withSource(ctx))
	if src == nil {
		return nil
	}

	defer src.Close()

	var sb strings.Builder
	if _, err := src.WriteTo(&sb); err != nil {
		return lang.ErrReadInput.Wrap(err)
	}

	w := outputFrom(ctx)

	for lex := range lexer.New(sb.String()).All() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", lex.Pos, lex); err != nil {
			return err
		}
	}

	return nil
}

// DeBruijn prints each resolved binding in De Bruijn form.
type DeBruijn struct {
	SourceArg `embed:""`
}

// Run executes the debruijn command.
func (d *DeBruijn) Run(ctx context.Context) error {
	prog, err := d.program(ctx, "debruijn")
	if err != nil {
		return err
	}

	w := outputFrom(ctx)

	for _, b := range prog.Bindings {
		if _, err := io.WriteString(w, b.Name+" = "+b.Value.String()+"\n"); err != nil {
			return err
		}
	}

	return nil
}
