package config

import (
	"time"
)

// Defaults applied once at load time so use sites never carry fallbacks.
const (
	DefaultCategory    = "Uncategorized"
	DefaultTitle       = "Untitled"
	DefaultRateLimitMS = 1000
	NotAvailable       = "N/A"
)

// Config represents one documentation site definition.
type Config struct {
	Name        string         `json:"name" yaml:"name"`
	Version     Scalar         `json:"version,omitempty" yaml:"version,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	BaseURL     string         `json:"base_url" yaml:"base_url"`
	DocsBase    string         `json:"docs_base,omitempty" yaml:"docs_base,omitempty"`
	Sections    []Section      `json:"sections" yaml:"sections"`
	Scraping    ScrapingConfig `json:"scraping" yaml:"scraping"`
	Output      OutputConfig   `json:"output" yaml:"output"`
}

// Section is a named group of pages under one category.
type Section struct {
	Category string `json:"category" yaml:"category"`
	Pages    []Page `json:"pages" yaml:"pages"`
}

// Page is one documentation entry. URL may be absolute or relative to BaseURL.
type Page struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// ScrapingConfig controls pacing between page writes.
type ScrapingConfig struct {
	// RateLimitMS is nil when unset; 0 disables pacing. Fractions are allowed.
	RateLimitMS *float64 `json:"rate_limit_ms,omitempty" yaml:"rate_limit_ms,omitempty"`
}

// OutputConfig holds the output keys docscaffold honours. Other keys are ignored.
type OutputConfig struct {
	Frontmatter bool `json:"frontmatter,omitempty" yaml:"frontmatter,omitempty"`
	Clean       bool `json:"clean,omitempty" yaml:"clean,omitempty"`
}

// RateLimit returns the delay between page writes.
func (s ScrapingConfig) RateLimit() time.Duration {
	if s.RateLimitMS == nil {
		return DefaultRateLimitMS * time.Millisecond
	}
	return time.Duration(*s.RateLimitMS * float64(time.Millisecond))
}

// TotalPages counts pages across all sections.
func (c *Config) TotalPages() int {
	total := 0
	for _, s := range c.Sections {
		total += len(s.Pages)
	}
	return total
}

// DisplayVersion returns the version or the N/A placeholder.
func (c *Config) DisplayVersion() string {
	return orNotAvailable(string(c.Version))
}

// DisplayDescription returns the description or the N/A placeholder.
func (c *Config) DisplayDescription() string {
	return orNotAvailable(c.Description)
}

// ApplyDefaults fills optional fields in place.
func (c *Config) ApplyDefaults() {
	if c.DocsBase == "" {
		c.DocsBase = c.BaseURL
	}
	for i := range c.Sections {
		if c.Sections[i].Category == "" {
			c.Sections[i].Category = DefaultCategory
		}
		for j := range c.Sections[i].Pages {
			if c.Sections[i].Pages[j].Title == "" {
				c.Sections[i].Pages[j].Title = DefaultTitle
			}
		}
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
