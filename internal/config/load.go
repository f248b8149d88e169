package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docscaffold/internal/foundation/errors"
)

// Format identifies the encoding of a configuration file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the decoder from the file extension. Unknown extensions are JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// IsConfigFile reports whether path has one of the supported extensions.
func IsConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	}
	return false
}

// Load reads, decodes, defaults and validates the configuration at path.
func Load(path string) (*Config, error) {
	cfg, err := read(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes data without applying defaults or validation.
func Parse(data []byte, format Format) (*Config, error) {
	data = expandEnv(data)

	var cfg Config
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	case FormatTOML:
		err = decodeTOML(data, &cfg)
	default:
		// Unmarshal rejects trailing data after the top-level value.
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, derrors.Wrap(err, derrors.CategoryConfig, "malformed configuration").
			With("format", string(format)).
			Build()
	}
	return &cfg, nil
}

// decodeTOML decodes into a generic tree and re-reads it as JSON, so TOML
// shares the JSON field names and the Scalar/number handling of Config.
func decodeTOML(data []byte, cfg *Config) error {
	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		return err
	}
	normalized, err := json.Marshal(tree)
	if err != nil {
		return err
	}
	return json.Unmarshal(normalized, cfg)
}

func read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, derrors.NotFound("configuration file not found").
				With("path", path).
				Build()
		}
		return nil, derrors.Wrap(err, derrors.CategoryFileSystem, "failed to read configuration").
			With("path", path).
			Build()
	}

	cfg, err := Parse(data, FormatFor(path))
	if err != nil {
		if classified, ok := derrors.As(err); ok {
			return nil, classified.With("path", path)
		}
		return nil, err
	}
	return cfg, nil
}
