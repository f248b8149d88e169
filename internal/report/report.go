// Package report prints human-readable progress for a generation run.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"git.home.luguber.info/inful/docscaffold/internal/config"
)

// Plan describes a run before any file is written.
type Plan struct {
	Name     string
	Output   string
	BaseURL  string
	Sections int
	Pages    int
}

// Summary is the final tally of a run.
type Summary struct {
	Written   int
	Unchanged int
	Failed    int
	Output    string
}

// Reporter receives progress events from the generator in run order.
type Reporter interface {
	Start(p Plan)
	Created(kind, path string)
	Section(category string, pages int)
	PageWritten(title string)
	PageUnchanged(title string)
	PageSkipped(title, reason string)
	PageFailed(title string, err error)
	Finish(s Summary)
}

// Nop discards all events.
type Nop struct{}

func (Nop) Start(Plan)                 {}
func (Nop) Created(string, string)     {}
func (Nop) Section(string, int)        {}
func (Nop) PageWritten(string)         {}
func (Nop) PageUnchanged(string)       {}
func (Nop) PageSkipped(string, string) {}
func (Nop) PageFailed(string, error)   {}
func (Nop) Finish(Summary)             {}

var rule = strings.Repeat("=", 60)

// Styles holds the console styles. Colours degrade to plain text when the
// writer is not a terminal.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles builds styles bound to the colour profile of w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Success: r.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	}
}

// Console writes progress lines to an io.Writer.
type Console struct {
	w      io.Writer
	styles Styles
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, styles: NewStyles(w)}
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.w, format, args...)
}

func (c *Console) Start(p Plan) {
	c.printf("📚 %s\n", c.styles.Title.Render("Starting documentation scrape for: "+p.Name))
	c.printf("📁 Output directory: %s\n", p.Output)
	c.printf("🔗 Base URL: %s\n", p.BaseURL)
	c.printf("📄 Total sections: %d\n", p.Sections)
	c.printf("📃 Total pages to scrape: %d\n\n", p.Pages)
}

func (c *Console) Created(kind, path string) {
	c.printf("✅ %s\n", c.styles.Success.Render(fmt.Sprintf("Created %s: %s", kind, path)))
}

func (c *Console) Section(category string, pages int) {
	c.printf("\n📖 %s\n", c.styles.Title.Render(fmt.Sprintf("Section: %s (%d pages)", category, pages)))
}

func (c *Console) PageWritten(title string) {
	c.printf("  ✅ %s\n", title)
}

func (c *Console) PageUnchanged(title string) {
	c.printf("  ♻️  %s\n", c.styles.Muted.Render(title+" (unchanged)"))
}

func (c *Console) PageSkipped(title, reason string) {
	c.printf("  ⚠️  %s\n", c.styles.Warning.Render(fmt.Sprintf("Skipping %s: %s", title, reason)))
}

func (c *Console) PageFailed(title string, err error) {
	c.printf("  ❌ %s\n", c.styles.Error.Render(fmt.Sprintf("%s: %v", title, err)))
}

func (c *Console) Finish(s Summary) {
	c.printf("\n%s\n", rule)
	c.printf("📊 %s\n", c.styles.Title.Render("SCRAPING SUMMARY"))
	c.printf("%s\n", rule)
	c.printf("✅ Pages successfully scraped: %d\n", s.Written)
	if s.Unchanged > 0 {
		c.printf("♻️  Pages unchanged: %d\n", s.Unchanged)
	}
	c.printf("❌ Pages failed: %d\n", s.Failed)
	c.printf("📁 Output directory: %s\n", s.Output)
	c.printf("%s\n", rule)
}

// ListConfigs prints the --list-configs view for summaries found in dir.
func (c *Console) ListConfigs(dir string, summaries []config.Summary) {
	c.printf("📋 %s\n", c.styles.Title.Render("Available Configuration Files:"))
	c.printf("%s\n", rule)
	if len(summaries) == 0 {
		c.printf("\nNo configuration files found in %s/\n", strings.TrimSuffix(dir, "/"))
	}
	for _, s := range summaries {
		c.printf("\n📄 %s\n", s.File)
		if s.Err != nil {
			c.printf("   %s\n", c.styles.Error.Render(fmt.Sprintf("Error loading config: %v", s.Err)))
			continue
		}
		c.printf("   Name: %s\n", s.Name)
		c.printf("   Version: %s\n", s.Version)
		c.printf("   Description: %s\n", s.Description)
		c.printf("   Sections: %d\n", s.Sections)
	}
	c.printf("\n%s\n", rule)
}

// MissingConfigsDir prints the message shown when the configs directory is absent.
func (c *Console) MissingConfigsDir() {
	c.printf("📋 %s\n", c.styles.Title.Render("Available Configuration Files:"))
	c.printf("%s\n", rule)
	c.printf("\n%s\n", c.styles.Warning.Render("Configs directory not found!"))
	c.printf("\n%s\n", rule)
}

// BrokenLinks prints index links whose target file is missing.
func (c *Console) BrokenLinks(links []string) {
	if len(links) == 0 {
		c.printf("🔎 %s\n", c.styles.Success.Render("Index links verified"))
		return
	}
	c.printf("🔎 %s\n", c.styles.Warning.Render(fmt.Sprintf("%d index links point to missing files:", len(links))))
	for _, l := range links {
		c.printf("   %s\n", c.styles.Muted.Render(l))
	}
}
