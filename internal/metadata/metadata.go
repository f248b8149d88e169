// Package metadata writes metadata.json, the machine-readable summary of a generated tree.
package metadata

import (
	"encoding/json"

	"git.home.luguber.info/inful/docscaffold/internal/config"
)

// FileName is the metadata file written at the output root.
const FileName = "metadata.json"

// Metadata mirrors the site definition plus section and page totals.
// Version and Description are null when the configuration omits them.
type Metadata struct {
	Name          string  `json:"name"`
	Version       *string `json:"version"`
	Description   *string `json:"description"`
	BaseURL       string  `json:"base_url"`
	DocsBase      string  `json:"docs_base"`
	TotalSections int     `json:"total_sections"`
	TotalPages    int     `json:"total_pages"`
}

// FromConfig derives the metadata for cfg.
func FromConfig(cfg *config.Config) Metadata {
	return Metadata{
		Name:          cfg.Name,
		Version:       optional(string(cfg.Version)),
		Description:   optional(cfg.Description),
		BaseURL:       cfg.BaseURL,
		DocsBase:      cfg.DocsBase,
		TotalSections: len(cfg.Sections),
		TotalPages:    cfg.TotalPages(),
	}
}

// Marshal renders m with two-space indentation.
func (m Metadata) Marshal() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
