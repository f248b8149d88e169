// Package layout derives output locations for pages: the resolved source URL,
// the section directory, the page file name and the path under the output root.
package layout

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docscaffold/internal/config"
	"git.home.luguber.info/inful/docscaffold/internal/sanitize"
)

// FileExt is appended to every sanitized page title.
const FileExt = ".md"

var (
	// ErrMissingURL marks a page without a source URL. Such pages are never written.
	ErrMissingURL = errors.New("no URL provided")
	// ErrEmptySegment marks a category or title that sanitizes to nothing.
	ErrEmptySegment = errors.New("name sanitizes to an empty path segment")
)

// Target is the resolved location of one page.
type Target struct {
	FullURL    string
	SectionDir string
	FileName   string
	// RelPath is slash-separated and relative to the output root.
	RelPath string
	// Path is the OS path under the output root.
	Path string
}

// ResolveURL returns url verbatim when it starts with "http", otherwise baseURL+url.
// No separator is inserted or removed.
func ResolveURL(baseURL, url string) string {
	if strings.HasPrefix(url, "http") {
		return url
	}
	return baseURL + url
}

// SectionDir is the directory name for a category.
func SectionDir(category string) string {
	return sanitize.Name(category)
}

// FileName is the file name for a page title.
func FileName(title string) string {
	return sanitize.Name(title) + FileExt
}

// IndexHref is the relative link used by INDEX.md. It is derived from the raw
// sanitizer output and is not checked for empty segments.
func IndexHref(category, title string) string {
	return "./" + SectionDir(category) + "/" + FileName(title)
}

// Resolve computes the Target for page inside category under root.
func Resolve(root, baseURL, category string, page config.Page) (Target, error) {
	if page.URL == "" {
		return Target{}, ErrMissingURL
	}
	section := SectionDir(category)
	if section == "" {
		return Target{}, &SegmentError{Kind: "category", Name: category}
	}
	if sanitize.Name(page.Title) == "" {
		return Target{}, &SegmentError{Kind: "title", Name: page.Title}
	}

	file := FileName(page.Title)
	return Target{
		FullURL:    ResolveURL(baseURL, page.URL),
		SectionDir: section,
		FileName:   file,
		RelPath:    section + "/" + file,
		Path:       filepath.Join(root, section, file),
	}, nil
}

// SegmentError reports which name produced an empty segment.
type SegmentError struct {
	Kind string
	Name string
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Kind, e.Name, ErrEmptySegment)
}

func (e *SegmentError) Unwrap() error { return ErrEmptySegment }
