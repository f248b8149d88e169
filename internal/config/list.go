package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	derrors "git.home.luguber.info/inful/docscaffold/internal/foundation/errors"
)

// Summary is the per-file line shown by --list-configs.
type Summary struct {
	File        string
	Name        string
	Version     string
	Description string
	Sections    int
	Err         error
}

// List summarizes every configuration file in dir, sorted by file name.
// Files that fail to parse are returned with Err set.
func List(dir string) ([]Summary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, derrors.NotFound("configs directory not found").
				With("path", dir).
				Build()
		}
		return nil, derrors.Wrap(err, derrors.CategoryFileSystem, "failed to read configs directory").
			With("path", dir).
			Build()
	}

	var out []Summary
	for _, e := range entries {
		if e.IsDir() || !IsConfigFile(e.Name()) {
			continue
		}
		out = append(out, summarize(filepath.Join(dir, e.Name())))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].File < out[j].File })
	return out, nil
}

func summarize(path string) Summary {
	s := Summary{File: filepath.Base(path)}
	cfg, err := read(path)
	if err != nil {
		s.Err = err
		return s
	}
	s.Name = fallback(cfg.Name, "Unknown")
	s.Version = fallback(string(cfg.Version), NotAvailable)
	s.Description = fallback(cfg.Description, "No description")
	s.Sections = len(cfg.Sections)
	return s
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
