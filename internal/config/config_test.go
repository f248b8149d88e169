package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docscaffold/internal/foundation/errors"
)

const sampleJSON = `{
  "name": "React",
  "version": "19",
  "description": "React documentation",
  "base_url": "https://react.dev",
  "sections": [
    {
      "category": "Learn",
      "pages": [
        {"title": "Quick Start", "url": "/learn"},
        {"title": "Thinking in React", "url": "/learn/thinking-in-react"}
      ]
    },
    {
      "category": "API & Reference",
      "pages": [
        {"title": "Hooks", "url": "https://react.dev/reference/react/hooks"},
        {"url": "/reference/react/components"}
      ]
    },
    {"pages": []}
  ],
  "scraping": {"rate_limit_ms": 250, "selectors": {"content": "main"}},
  "output": {"format": "markdown", "frontmatter": true}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "react.json", sampleJSON)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "React", cfg.Name)
	require.Equal(t, "https://react.dev", cfg.DocsBase, "docs_base defaults to base_url")
	require.Len(t, cfg.Sections, 3)
	require.Equal(t, DefaultCategory, cfg.Sections[2].Category)
	require.Equal(t, DefaultTitle, cfg.Sections[1].Pages[1].Title)
	require.Equal(t, 4, cfg.TotalPages())
	require.Equal(t, 250*time.Millisecond, cfg.Scraping.RateLimit())
	require.True(t, cfg.Output.Frontmatter)
	require.False(t, cfg.Output.Clean)
}

func TestLoad_YAMLAndTOML(t *testing.T) {
	dir := t.TempDir()
	yamlPath := writeFile(t, dir, "site.yaml", `name: Tailwind
base_url: https://tailwindcss.com/docs/
sections:
  - category: Core Concepts
    pages:
      - title: Utility-First
        url: utility-first
`)
	tomlPath := writeFile(t, dir, "site.toml", `name = "Tailwind"
base_url = "https://tailwindcss.com/docs/"

[scraping]
rate_limit_ms = 0

[[sections]]
category = "Core Concepts"

[[sections.pages]]
title = "Utility-First"
url = "utility-first"
`)

	for _, p := range []string{yamlPath, tomlPath} {
		cfg, err := Load(p)
		require.NoError(t, err, p)
		require.Equal(t, "Tailwind", cfg.Name)
		require.Len(t, cfg.Sections, 1)
		require.Equal(t, "Core Concepts", cfg.Sections[0].Category)
		require.Equal(t, Page{Title: "Utility-First", URL: "utility-first"}, cfg.Sections[0].Pages[0])
	}

	cfg, err := Load(tomlPath)
	require.NoError(t, err)
	require.Equal(t, time.Duration(0), cfg.Scraping.RateLimit())
}

func TestLoad_DefaultRateLimit(t *testing.T) {
	path := writeFile(t, t.TempDir(), "min.json", `{"name": "Min", "base_url": "https://x.dev"}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, time.Second, cfg.Scraping.RateLimit())
	require.Equal(t, NotAvailable, cfg.DisplayVersion())
	require.Equal(t, NotAvailable, cfg.DisplayDescription())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.json"))
		require.Error(t, err)
		require.True(t, derrors.HasCategory(err, derrors.CategoryNotFound))
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Load(writeFile(t, dir, "bad.json", `{"name": `))
		require.Error(t, err)
		require.True(t, derrors.HasCategory(err, derrors.CategoryConfig))
		classified, ok := derrors.As(err)
		require.True(t, ok)
		require.Equal(t, filepath.Join(dir, "bad.json"), classified.Field("path"))
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := Load(writeFile(t, dir, "noname.json", `{"base_url": "https://x.dev"}`))
		require.True(t, derrors.HasCategory(err, derrors.CategoryValidation))
	})

	t.Run("negative rate limit", func(t *testing.T) {
		_, err := Load(writeFile(t, dir, "neg.json", `{"name": "x", "scraping": {"rate_limit_ms": -5}}`))
		require.True(t, derrors.HasCategory(err, derrors.CategoryValidation))
	})

	t.Run("malformed json (trailing data)", func(t *testing.T) {
		for name, body := range map[string]string{
			"garbage.json": `{"name": "x", "base_url": "https://x.dev"} this is not json`,
			"twice.json":   `{"name": "x"}{"name": "y"}`,
		} {
			_, err := Load(writeFile(t, dir, name, body))
			require.Error(t, err, name)
			require.True(t, derrors.HasCategory(err, derrors.CategoryConfig), name)
		}
	})

	t.Run("structured version", func(t *testing.T) {
		_, err := Load(writeFile(t, dir, "objver.json", `{"name": "x", "version": {"major": 2}}`))
		require.True(t, derrors.HasCategory(err, derrors.CategoryConfig))
	})
}

func TestLoad_NumericVersionAndFractionalRateLimit(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"site.json": `{"name": "x", "version": 2.1, "scraping": {"rate_limit_ms": 500.5}}`,
		"site.yaml": "name: x\nversion: 2.1\nscraping:\n  rate_limit_ms: 500.5\n",
		"site.toml": "name = \"x\"\nversion = 2.1\n\n[scraping]\nrate_limit_ms = 500.5\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, dir, name, body))
			require.NoError(t, err)
			require.Equal(t, Scalar("2.1"), cfg.Version)
			require.Equal(t, "2.1", cfg.DisplayVersion())
			require.Equal(t, 500*time.Millisecond+500*time.Microsecond, cfg.Scraping.RateLimit())
		})
	}
}

func TestScalar_JSON(t *testing.T) {
	cases := []struct {
		in   string
		want Scalar
	}{
		{`{"name": "x", "version": "v2.1"}`, "v2.1"},
		{`{"name": "x", "version": 3}`, "3"},
		{`{"name": "x", "version": true}`, "true"},
		{`{"name": "x", "version": null}`, ""},
	}
	for _, tc := range cases {
		cfg, err := Parse([]byte(tc.in), FormatJSON)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, cfg.Version, tc.in)
	}

	_, err := Parse([]byte(`{"name": "x", "version": [1, 2]}`), FormatJSON)
	require.Error(t, err)
}

func TestParse_ExpandsEnv(t *testing.T) {
	t.Setenv("DOCS_HOST", "https://docs.example.com")

	cfg, err := Parse([]byte(`{"name": "x", "base_url": "${DOCS_HOST}/v2", "description": "costs $5 or ${UNSET_DOCS_VAR}"}`), FormatJSON)
	require.NoError(t, err)
	require.Equal(t, "https://docs.example.com/v2", cfg.BaseURL)
	require.Equal(t, "costs $5 or ${UNSET_DOCS_VAR}", cfg.Description)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "DOCSCAFFOLD_TEST_A=from-file\nDOCSCAFFOLD_TEST_B=from-file\n")
	t.Setenv("DOCSCAFFOLD_TEST_B", "from-process")
	t.Cleanup(func() { _ = os.Unsetenv("DOCSCAFFOLD_TEST_A") })

	loaded, err := LoadEnv(filepath.Join(dir, "missing.env"), envPath)
	require.NoError(t, err)
	require.Equal(t, envPath, loaded)
	require.Equal(t, "from-file", os.Getenv("DOCSCAFFOLD_TEST_A"))
	require.Equal(t, "from-process", os.Getenv("DOCSCAFFOLD_TEST_B"))

	loaded, err = LoadEnv(filepath.Join(dir, "none"))
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestFormatFor(t *testing.T) {
	require.Equal(t, FormatJSON, FormatFor("a.json"))
	require.Equal(t, FormatYAML, FormatFor("a.YML"))
	require.Equal(t, FormatYAML, FormatFor("a.yaml"))
	require.Equal(t, FormatTOML, FormatFor("a.toml"))
	require.Equal(t, FormatJSON, FormatFor("a.conf"))
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "react.json", sampleJSON)
	writeFile(t, dir, "bare.yaml", "sections: []\n")
	writeFile(t, dir, "broken.json", "{")
	writeFile(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0o750))

	summaries, err := List(dir)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	require.Equal(t, "bare.yaml", summaries[0].File)
	require.Equal(t, "Unknown", summaries[0].Name)
	require.Equal(t, NotAvailable, summaries[0].Version)
	require.Equal(t, "No description", summaries[0].Description)

	require.Equal(t, "broken.json", summaries[1].File)
	require.Error(t, summaries[1].Err)

	require.Equal(t, "react.json", summaries[2].File)
	require.Equal(t, "React", summaries[2].Name)
	require.Equal(t, "19", summaries[2].Version)
	require.Equal(t, 3, summaries[2].Sections)
}

func TestList_MissingDir(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "configs"))
	require.True(t, derrors.HasCategory(err, derrors.CategoryNotFound))
}
