package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"
)

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// LoadEnv loads the first existing .env-style file among paths. Existing process
// variables are never overridden. It returns the file that was loaded, if any.
func LoadEnv(paths ...string) (string, error) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return "", err
		}
		return p, nil
	}
	return "", nil
}

// EnvCandidates lists the env files considered for a config path, nearest first.
func EnvCandidates(configPath string) []string {
	dir := filepath.Dir(configPath)
	return []string{
		filepath.Join(dir, ".env"),
		".env",
		".env.local",
	}
}

// expandEnv replaces ${VAR} references with environment values. Unset variables are left untouched.
func expandEnv(data []byte) []byte {
	return envRef.ReplaceAllFunc(data, func(m []byte) []byte {
		name := envRef.FindSubmatch(m)[1]
		if v, ok := os.LookupEnv(string(name)); ok {
			return []byte(v)
		}
		return m
	})
}
