// Package content renders the placeholder Markdown written for each page.
package content

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/google/uuid"
	"github.com/inful/mdfp"

	"git.home.luguber.info/inful/docscaffold/internal/frontmatter"
)

// Page carries everything a placeholder needs.
type Page struct {
	Title    string
	Category string
	URL      string
	// Site and Version are printed in the footer.
	Site    string
	Version string
}

// Renderer turns pages into file contents.
type Renderer struct {
	frontmatter bool
}

// NewRenderer returns a Renderer. With frontmatter enabled every page starts with
// a YAML block carrying title, category, source_url, uid and fingerprint.
func NewRenderer(withFrontmatter bool) *Renderer {
	return &Renderer{frontmatter: withFrontmatter}
}

// Render returns the file contents for p.
func (r *Renderer) Render(p Page) ([]byte, error) {
	var b strings.Builder
	if err := bodyTemplate.Execute(&b, p); err != nil {
		return nil, err
	}
	body := []byte(b.String())
	if !r.frontmatter {
		return body, nil
	}

	fields := Fields(p)
	fp, err := Fingerprint(fields, body)
	if err != nil {
		return nil, err
	}
	fields[mdfp.FingerprintField] = fp
	return frontmatter.Join(fields, body)
}

// Fields returns the frontmatter fields for p, without the fingerprint.
func Fields(p Page) map[string]any {
	return map[string]any{
		"title":      p.Title,
		"category":   p.Category,
		"source_url": p.URL,
		"uid":        UID(p.URL),
	}
}

// UID is a name-based UUID of the source URL, stable across runs.
func UID(url string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(url)).String()
}

// Fingerprint hashes fields (minus fingerprint and uid) together with body.
func Fingerprint(fields map[string]any, body []byte) (string, error) {
	hashed := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == mdfp.FingerprintField || k == "uid" {
			continue
		}
		hashed[k] = v
	}
	raw, err := frontmatter.SerializeYAML(hashed)
	if err != nil {
		return "", fmt.Errorf("serialize frontmatter for fingerprint: %w", err)
	}
	return mdfp.CalculateFingerprintFromParts(strings.TrimSuffix(string(raw), "\n"), string(body)), nil
}

// StoredFingerprint returns the fingerprint recorded in doc's front matter.
// ok is false when doc has no front matter, it cannot be parsed, it carries
// no fingerprint, or the recorded value no longer matches the document (the
// page was edited after it was generated).
func StoredFingerprint(doc []byte) (fp string, ok bool) {
	raw, body, had, err := frontmatter.Split(doc)
	if err != nil || !had {
		return "", false
	}
	fields, err := frontmatter.Parse(raw)
	if err != nil {
		return "", false
	}
	fp, _ = fields[mdfp.FingerprintField].(string)
	if fp == "" {
		return "", false
	}
	current, err := Fingerprint(fields, body)
	if err != nil || current != fp {
		return "", false
	}
	return fp, true
}

var bodyTemplate = template.Must(template.New("page").Parse(`# {{.Title}}

**Category:** {{.Category}}
**URL:** {{.URL}}

## Overview

This documentation page covers: **{{.Title}}**

> **Note:** This is a placeholder file generated by docscaffold.
> A full implementation would contain the content published at {{.URL}}

## Implementation Notes

To replace this placeholder with real content:

1. Fetch the page content from the URL above
2. Parse the HTML using the selectors defined in the config
3. Extract relevant sections (headings, paragraphs, code blocks, examples)
4. Convert to Markdown format
5. Preserve code blocks and formatting

## Expected Content Structure

Based on the configuration, this page should include:

- **Main Content:** Primary documentation text
- **Code Examples:** Usage examples and snippets
- **API References:** Method signatures and parameters
- **Related Links:** Navigation to related topics

---

*Generated by docscaffold*
*Configuration: {{.Site}} v{{.Version}}*
`))
