// Package index renders INDEX.md, the table of contents of a generated tree.
package index

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docscaffold/internal/config"
	"git.home.luguber.info/inful/docscaffold/internal/layout"
	"git.home.luguber.info/inful/docscaffold/internal/markdown"
)

// FileName is the index file written at the output root.
const FileName = "INDEX.md"

// Build renders the index for cfg. Sections and pages keep configuration order.
func Build(cfg *config.Config) string {
	lines := []string{
		fmt.Sprintf("# %s Documentation Index", cfg.Name),
		"",
		fmt.Sprintf("**Version:** %s", cfg.DisplayVersion()),
		fmt.Sprintf("**Description:** %s", cfg.DisplayDescription()),
		fmt.Sprintf("**Base URL:** %s", cfg.BaseURL),
		"",
		"## Table of Contents",
		"",
	}

	for _, section := range cfg.Sections {
		lines = append(lines, "### "+section.Category, "")
		for _, page := range section.Pages {
			lines = append(lines, fmt.Sprintf("- [%s](%s) - [%s](%s)",
				page.Title,
				layout.IndexHref(section.Category, page.Title),
				page.URL,
				layout.ResolveURL(cfg.BaseURL, page.URL),
			))
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"---",
		"",
		"*Index generated by docscaffold*",
	)
	return strings.Join(lines, "\n")
}

// Verify parses an index document and returns the relative links whose
// target does not exist under root, in document order.
func Verify(doc []byte, root string) ([]string, error) {
	var missing []string
	for _, link := range markdown.ExtractLinks(doc) {
		if !link.IsRelative() {
			continue
		}
		target := filepath.Join(root, filepath.FromSlash(link.Destination))
		info, err := os.Stat(target)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			missing = append(missing, link.Destination)
		case err != nil:
			return nil, fmt.Errorf("stat %s: %w", target, err)
		case info.IsDir():
			missing = append(missing, link.Destination)
		}
	}
	return missing, nil
}
