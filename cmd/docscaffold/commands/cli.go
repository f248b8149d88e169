package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	derrors "git.home.luguber.info/inful/docscaffold/internal/foundation/errors"
	"git.home.luguber.info/inful/docscaffold/internal/metrics"
	"git.home.luguber.info/inful/docscaffold/internal/report"
	"git.home.luguber.info/inful/docscaffold/internal/version"
	"github.com/alecthomas/kong"
)

// errUsage signals that usage was printed because required flags were missing.
var errUsage = errors.New("missing required flags")

// Global carries the per-invocation state shared by the command flows.
type Global struct {
	Logger   *slog.Logger
	Stdout   io.Writer
	Console  *report.Console
	Errors   *derrors.CLIErrorAdapter
	Recorder metrics.Recorder
	usage    func()
}

// CLI definition & global flags.
type CLI struct {
	Config      string           `short:"c" help:"Path to configuration file (JSON, YAML or TOML)" env:"DOCSCAFFOLD_CONFIG"`
	Output      string           `short:"o" help:"Output directory for generated documentation" env:"DOCSCAFFOLD_OUTPUT"`
	ListConfigs bool             `name:"list-configs" help:"List all available configuration files"`
	ConfigsDir  string           `name:"configs-dir" help:"Directory scanned by --list-configs" default:"configs" env:"DOCSCAFFOLD_CONFIGS_DIR"`
	Clean       bool             `help:"Remove the output directory before generating"`
	Frontmatter bool             `help:"Prefix every page with YAML front matter"`
	RateLimit   int              `name:"rate-limit" help:"Override scraping.rate_limit_ms (milliseconds, -1 keeps the configured value)" default:"-1"`
	Watch       bool             `help:"Regenerate whenever the configuration file changes"`
	Verify      bool             `help:"Check index links against the generated files after each run"`
	MetricsFile string           `name:"metrics-file" help:"Write Prometheus metrics to this textfile after each run"`
	EnvFile     string           `name:"env-file" help:"Environment file loaded before the configuration is read"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`
}

// Execute parses args and runs the selected flow. It returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cli CLI
	exited, exitCode := false, 0
	parser, err := kong.New(&cli,
		kong.Name("docscaffold"),
		kong.Description("Generate a placeholder documentation tree from a site configuration."),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": version.String()},
		kong.Exit(func(code int) {
			exited, exitCode = true, code
		}),
	)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "docscaffold: %v\n", err)
		return 10
	}

	kctx, err := parser.Parse(args)
	if exited {
		return exitCode
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "docscaffold: error: %v\n", err)
		return 1
	}

	logger := newLogger(stderr, cli.Verbose)
	slog.SetDefault(logger)

	g := &Global{
		Logger:   logger,
		Stdout:   stdout,
		Console:  report.NewConsole(stdout),
		Errors:   derrors.NewCLIErrorAdapter(cli.Verbose, logger).WithOutput(stderr),
		Recorder: metrics.NoopRecorder{},
		usage: func() {
			_ = kctx.PrintUsage(false)
		},
	}

	err = cli.Run(ctx, g)
	if errors.Is(err, errUsage) {
		return 1
	}
	return g.Errors.Handle(err)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Run dispatches to the list, generate or watch flow.
func (c *CLI) Run(ctx context.Context, g *Global) error {
	if c.ListConfigs {
		return c.runList(g)
	}
	if c.Config == "" || c.Output == "" {
		g.usage()
		return errUsage
	}
	if c.RateLimit < -1 {
		return derrors.Validation("rate limit must be -1 or a non-negative number of milliseconds").
			With("rate_limit_ms", c.RateLimit).
			Build()
	}
	if c.MetricsFile != "" {
		g.Recorder = metrics.NewPrometheusRecorder(nil)
	}
	if c.Watch {
		return c.runWatch(ctx, g)
	}
	return c.runGenerate(ctx, g)
}
