package generator

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/docscaffold/internal/config"
	"git.home.luguber.info/inful/docscaffold/internal/content"
	derrors "git.home.luguber.info/inful/docscaffold/internal/foundation/errors"
	"git.home.luguber.info/inful/docscaffold/internal/index"
	"git.home.luguber.info/inful/docscaffold/internal/layout"
	"git.home.luguber.info/inful/docscaffold/internal/logfields"
	"git.home.luguber.info/inful/docscaffold/internal/metadata"
	"git.home.luguber.info/inful/docscaffold/internal/metrics"
	"git.home.luguber.info/inful/docscaffold/internal/report"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Result is the outcome of a run.
type Result struct {
	// Written counts every page present on disk after the run, Unchanged
	// the subset whose existing file already had the same fingerprint.
	Written   int
	Unchanged int
	Failed    int
	Sections  int
	Pages     int
	Duration  time.Duration
	Failures  []PageFailure
}

// PageFailure records why a page was not written.
type PageFailure struct {
	Section string
	Title   string
	Err     error
}

// Generator writes the output tree for one configuration.
type Generator struct {
	cfg         *config.Config
	root        string
	reporter    report.Reporter
	recorder    metrics.Recorder
	pacer       Pacer
	frontmatter bool
	clean       bool
	now         func() time.Time
}

// New returns a Generator for cfg writing under root. cfg must already have
// defaults applied (config.Load does this).
func New(cfg *config.Config, root string, opts ...Option) *Generator {
	g := &Generator{
		cfg:         cfg,
		root:        root,
		reporter:    report.Nop{},
		recorder:    metrics.NoopRecorder{},
		pacer:       NewPacer(cfg.Scraping.RateLimit()),
		frontmatter: cfg.Output.Frontmatter,
		clean:       cfg.Output.Clean,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run generates the tree. The returned error is non-nil only for failures that
// stop the run: the output root, index or metadata cannot be written, or ctx
// is canceled. Page failures are reported through Result.
func (g *Generator) Run(ctx context.Context) (Result, error) {
	start := g.now()
	res := Result{Sections: len(g.cfg.Sections), Pages: g.cfg.TotalPages()}
	g.recorder.SetPagesPlanned(res.Pages)

	if err := g.prepareRoot(); err != nil {
		g.recorder.IncRunOutcome(metrics.RunFailed)
		return res, err
	}

	g.reporter.Start(report.Plan{
		Name:     g.cfg.Name,
		Output:   g.root,
		BaseURL:  g.cfg.BaseURL,
		Sections: res.Sections,
		Pages:    res.Pages,
	})

	if err := g.writeIndex(); err != nil {
		g.recorder.IncRunOutcome(metrics.RunFailed)
		return res, err
	}
	if err := g.writeMetadata(); err != nil {
		g.recorder.IncRunOutcome(metrics.RunFailed)
		return res, err
	}

	renderer := content.NewRenderer(g.frontmatter)
	seen := make(map[string]string)
	for _, section := range g.cfg.Sections {
		if err := g.runSection(ctx, renderer, section, seen, &res); err != nil {
			res.Duration = g.now().Sub(start)
			g.recorder.IncRunOutcome(metrics.RunCanceled)
			return res, err
		}
	}

	res.Duration = g.now().Sub(start)
	g.recorder.ObserveRunDuration(res.Duration)
	if res.Failed > 0 {
		g.recorder.IncRunOutcome(metrics.RunPartial)
	} else {
		g.recorder.IncRunOutcome(metrics.RunSuccess)
	}

	g.reporter.Finish(report.Summary{Written: res.Written, Unchanged: res.Unchanged, Failed: res.Failed, Output: g.root})
	slog.Info("Generation finished",
		logfields.Output(g.root),
		logfields.Written(res.Written),
		logfields.Failed(res.Failed),
		logfields.DurationMS(float64(res.Duration.Microseconds())/1000))
	return res, nil
}

func (g *Generator) prepareRoot() error {
	if g.clean {
		slog.Debug("Cleaning output directory", logfields.Output(g.root))
		if err := os.RemoveAll(g.root); err != nil {
			return derrors.Wrap(err, derrors.CategoryFileSystem, "failed to clean output directory").
				With("path", g.root).
				Build()
		}
	}
	if err := os.MkdirAll(g.root, dirPerm); err != nil {
		return derrors.Wrap(err, derrors.CategoryFileSystem, "failed to create output directory").
			With("path", g.root).
			Build()
	}
	return nil
}

func (g *Generator) writeIndex() error {
	path := filepath.Join(g.root, index.FileName)
	if err := os.WriteFile(path, []byte(index.Build(g.cfg)), filePerm); err != nil {
		return derrors.Wrap(err, derrors.CategoryFileSystem, "failed to write index").
			With("path", path).
			Build()
	}
	g.reporter.Created("index", path)
	return nil
}

func (g *Generator) writeMetadata() error {
	path := filepath.Join(g.root, metadata.FileName)
	data, err := metadata.FromConfig(g.cfg).Marshal()
	if err != nil {
		return derrors.Wrap(err, derrors.CategoryInternal, "failed to encode metadata").Build()
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return derrors.Wrap(err, derrors.CategoryFileSystem, "failed to write metadata").
			With("path", path).
			Build()
	}
	g.reporter.Created("metadata", path)
	return nil
}

func (g *Generator) runSection(ctx context.Context, renderer *content.Renderer, section config.Section, seen map[string]string, res *Result) error {
	g.reporter.Section(section.Category, len(section.Pages))

	var dirErr error
	if dir := layout.SectionDir(section.Category); dir != "" {
		if err := os.MkdirAll(filepath.Join(g.root, dir), dirPerm); err != nil {
			dirErr = err
			slog.Warn("Failed to create section directory", logfields.Section(section.Category), logfields.Error(err))
		}
	}

	for _, page := range section.Pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		if dirErr != nil {
			g.fail(res, section.Category, page.Title, dirErr)
			continue
		}
		if err := g.runPage(ctx, renderer, section.Category, page, seen, res); err != nil {
			return err
		}
	}
	return nil
}

// runPage returns an error only when pacing is interrupted by ctx.
func (g *Generator) runPage(ctx context.Context, renderer *content.Renderer, category string, page config.Page, seen map[string]string, res *Result) error {
	target, err := layout.Resolve(g.root, g.cfg.BaseURL, category, page)
	if err != nil {
		g.fail(res, category, page.Title, err)
		return nil
	}

	if err := g.pacer.Wait(ctx); err != nil {
		return err
	}

	started := g.now()
	data, err := renderer.Render(content.Page{
		Title:    page.Title,
		Category: category,
		URL:      target.FullURL,
		Site:     g.cfg.Name,
		Version:  g.cfg.DisplayVersion(),
	})
	unchanged := false
	if err == nil {
		unchanged = g.frontmatter && sameFingerprint(target.Path, data)
		if !unchanged {
			err = os.WriteFile(target.Path, data, filePerm)
		}
	}
	g.recorder.ObservePageDuration(target.SectionDir, g.now().Sub(started))
	if err != nil {
		g.fail(res, category, page.Title, err)
		return nil
	}

	if previous, dup := seen[target.RelPath]; dup {
		slog.Warn("Page overwrote an earlier page with the same file name",
			logfields.Path(target.RelPath), logfields.Page(page.Title), slog.String("previous", previous))
	}
	seen[target.RelPath] = page.Title

	res.Written++
	if unchanged {
		res.Unchanged++
		g.recorder.IncPageResult(target.SectionDir, metrics.PageUnchanged)
		g.reporter.PageUnchanged(page.Title)
		slog.Debug("Page unchanged", logfields.Page(page.Title), logfields.Path(target.Path))
		return nil
	}
	g.recorder.IncPageResult(target.SectionDir, metrics.PageWritten)
	g.reporter.PageWritten(page.Title)
	slog.Debug("Page written", logfields.Page(page.Title), logfields.Path(target.Path), logfields.URL(target.FullURL))
	return nil
}

// sameFingerprint reports whether the file at path already carries the
// fingerprint of rendered. Unreadable or fingerprint-less files differ.
func sameFingerprint(path string, rendered []byte) bool {
	want, ok := content.StoredFingerprint(rendered)
	if !ok {
		return false
	}
	existing, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	have, ok := content.StoredFingerprint(existing)
	return ok && have == want
}

func (g *Generator) fail(res *Result, category, title string, err error) {
	res.Failed++
	res.Failures = append(res.Failures, PageFailure{Section: category, Title: title, Err: err})
	g.recorder.IncPageResult(layout.SectionDir(category), metrics.PageFailed)

	if errors.Is(err, layout.ErrMissingURL) {
		g.reporter.PageSkipped(title, "No URL provided")
	} else {
		g.reporter.PageFailed(title, err)
	}
	slog.Debug("Page failed", logfields.Section(category), logfields.Page(title), logfields.Error(err))
}
