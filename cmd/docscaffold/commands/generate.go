package commands

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/docscaffold/internal/config"
	derrors "git.home.luguber.info/inful/docscaffold/internal/foundation/errors"
	"git.home.luguber.info/inful/docscaffold/internal/generator"
	"git.home.luguber.info/inful/docscaffold/internal/index"
	"git.home.luguber.info/inful/docscaffold/internal/logfields"
	"git.home.luguber.info/inful/docscaffold/internal/metrics"
)

func (c *CLI) runGenerate(ctx context.Context, g *Global) error {
	if err := c.loadEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	slog.Debug("Configuration loaded",
		logfields.Config(c.Config),
		slog.Int("sections", len(cfg.Sections)),
		slog.Int("pages", cfg.TotalPages()))

	opts := []generator.Option{
		generator.WithReporter(g.Console),
		generator.WithRecorder(g.Recorder),
		generator.WithClean(c.Clean),
		generator.WithFrontmatter(c.Frontmatter),
	}
	if c.RateLimit >= 0 {
		opts = append(opts, generator.WithRateLimit(time.Duration(c.RateLimit)*time.Millisecond))
	}

	_, runErr := generator.New(cfg, c.Output, opts...).Run(ctx)
	c.writeMetrics(g)
	if runErr != nil {
		return runErr
	}

	if c.Verify {
		return c.verify(g)
	}
	return nil
}

// loadEnv loads --env-file, or the first .env found near the config.
func (c *CLI) loadEnv() error {
	if c.EnvFile != "" {
		if _, err := os.Stat(c.EnvFile); errors.Is(err, fs.ErrNotExist) {
			return derrors.NotFound("environment file not found").
				With("path", c.EnvFile).
				Build()
		}
		if _, err := config.LoadEnv(c.EnvFile); err != nil {
			return derrors.Wrap(err, derrors.CategoryConfig, "failed to load environment file").
				With("path", c.EnvFile).
				Build()
		}
		return nil
	}

	loaded, err := config.LoadEnv(config.EnvCandidates(c.Config)...)
	if err != nil {
		return derrors.Wrap(err, derrors.CategoryConfig, "failed to load environment file").Build()
	}
	if loaded != "" {
		slog.Debug("Loaded environment file", logfields.Path(loaded))
	}
	return nil
}

func (c *CLI) writeMetrics(g *Global) {
	if c.MetricsFile == "" {
		return
	}
	pr, ok := g.Recorder.(*metrics.PrometheusRecorder)
	if !ok {
		return
	}
	if err := pr.WriteTextfile(c.MetricsFile); err != nil {
		slog.Warn("Failed to write metrics file", logfields.Path(c.MetricsFile), logfields.Error(err))
		return
	}
	slog.Debug("Metrics written", logfields.Path(c.MetricsFile))
}

func (c *CLI) verify(g *Global) error {
	indexPath := filepath.Join(c.Output, index.FileName)
	doc, err := os.ReadFile(indexPath)
	if err != nil {
		return derrors.Wrap(err, derrors.CategoryFileSystem, "failed to read index").
			With("path", indexPath).
			Build()
	}
	broken, err := index.Verify(doc, c.Output)
	if err != nil {
		return derrors.Wrap(err, derrors.CategoryInternal, "failed to verify index").Build()
	}
	g.Console.BrokenLinks(broken)
	return nil
}
