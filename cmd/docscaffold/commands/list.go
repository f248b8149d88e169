package commands

import (
	"git.home.luguber.info/inful/docscaffold/internal/config"
	derrors "git.home.luguber.info/inful/docscaffold/internal/foundation/errors"
)

func (c *CLI) runList(g *Global) error {
	summaries, err := config.List(c.ConfigsDir)
	if err != nil {
		if derrors.HasCategory(err, derrors.CategoryNotFound) {
			g.Console.MissingConfigsDir()
			return nil
		}
		return err
	}
	g.Console.ListConfigs(c.ConfigsDir, summaries)
	return nil
}
