package commands

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/docscaffold/internal/logfields"
	"git.home.luguber.info/inful/docscaffold/internal/watch"
)

// runWatch generates once, then regenerates on every config change until ctx ends.
// A broken edit is reported and the watcher keeps running.
func (c *CLI) runWatch(ctx context.Context, g *Global) error {
	if err := c.runGenerate(ctx, g); err != nil {
		return err
	}

	w, err := watch.NewConfigWatcher(c.Config, watch.DefaultDebounce, func(ctx context.Context) {
		slog.Info("Configuration changed, regenerating", logfields.Config(c.Config))
		if err := c.runGenerate(ctx, g); err != nil && ctx.Err() == nil {
			_ = g.Errors.Handle(err)
		}
	})
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
