package cli

import (
	"context"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ardnew/curry/cli/cmd"
	"github.com/ardnew/curry/lang"
	"github.com/ardnew/curry/log"
	"github.com/ardnew/curry/pkg"
)

// CLI is the top-level command-line interface for curry.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Source   []string `help:"Input source file(s) or '-' for stdin"       name:"source" short:"s" type:"existingfile"`
	MaxDepth int      `default:"${maxDepth}" help:"Maximum evaluation depth (0 for unbounded)"`
	Cache    bool     `default:"true"        help:"Cache parsed programs by content"             negatable:""`

	Eval    cmd.Eval    `cmd:"" default:"withargs" help:"Evaluate a binding or expression"`
	Repl    cmd.Repl    `cmd:""                    help:"Start an interactive session"`
	Fmt     cmd.Fmt     `cmd:""                    help:"Format a program"`
	Init    cmd.Init    `cmd:""                    help:"Initialize configuration file"`
	Version cmd.Version `cmd:""                    help:"Print version"`
}

// options returns the program options selected by the global flags.
func (c *CLI) options() []lang.Option {
	return []lang.Option{
		lang.WithMaxDepth(c.MaxDepth),
		lang.WithCache(c.Cache),
		lang.WithLogger(log.Default()),
	}
}

// Run executes the curry CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configFile(pkg.Extension)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cachePath(),
		"maxDepth":           strconv.Itoa(lang.DefaultMaxDepth),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFile(".json")),
		kong.Configuration(resolve(ctx), configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSourceFiles(ctx, cli.Source)
	ctx = cmd.WithOptions(ctx, cli.options()...)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
