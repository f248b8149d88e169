// Package watch re-runs generation when the configuration file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docscaffold/internal/logfields"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 500 * time.Millisecond

// ConfigWatcher calls OnChange after the watched file settles.
type ConfigWatcher struct {
	path     string
	debounce time.Duration
	onChange func(ctx context.Context)
}

// NewConfigWatcher watches configPath. A non-positive debounce uses DefaultDebounce.
func NewConfigWatcher(configPath string, debounce time.Duration, onChange func(ctx context.Context)) (*ConfigWatcher, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &ConfigWatcher{path: absPath, debounce: debounce, onChange: onChange}, nil
}

// Run blocks until ctx is done. The directory is watched rather than the file
// so that editors replacing the file by rename keep triggering events.
func (cw *ConfigWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			slog.Warn("Error closing file watcher", logfields.Error(err))
		}
	}()

	dir := filepath.Dir(cw.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch config directory %s: %w", dir, err)
	}
	slog.Info("Watching configuration", logfields.Config(cw.path))

	name := filepath.Base(cw.path)
	timer := time.NewTimer(cw.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				slog.Debug("Config change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
				timer.Reset(cw.debounce)
			} else if event.Has(fsnotify.Remove) {
				slog.Warn("Config file removed", logfields.Path(event.Name))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", logfields.Error(err))
		case <-timer.C:
			cw.onChange(ctx)
		}
	}
}
