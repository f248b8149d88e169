package generator

import (
	"time"

	"git.home.luguber.info/inful/docscaffold/internal/metrics"
	"git.home.luguber.info/inful/docscaffold/internal/report"
)

// Option configures a Generator.
type Option func(*Generator)

// WithReporter sets the progress reporter. Defaults to report.Nop.
func WithReporter(r report.Reporter) Option {
	return func(g *Generator) {
		if r != nil {
			g.reporter = r
		}
	}
}

// WithRecorder sets the metrics recorder. Defaults to metrics.NoopRecorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithPacer replaces the pacer derived from the configuration.
func WithPacer(p Pacer) Option {
	return func(g *Generator) {
		if p != nil {
			g.pacer = p
		}
	}
}

// WithRateLimit overrides scraping.rate_limit_ms.
func WithRateLimit(interval time.Duration) Option {
	return func(g *Generator) { g.pacer = NewPacer(interval) }
}

// WithFrontmatter forces YAML front matter on (or leaves output.frontmatter in charge when false).
func WithFrontmatter(enabled bool) Option {
	return func(g *Generator) { g.frontmatter = g.frontmatter || enabled }
}

// WithClean removes the output root before writing.
func WithClean(enabled bool) Option {
	return func(g *Generator) { g.clean = g.clean || enabled }
}

// WithClock sets the time source used for durations.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}
