package config

import (
	derrors "git.home.luguber.info/inful/docscaffold/internal/foundation/errors"
)

// Validate checks the fields a run cannot proceed without.
func (c *Config) Validate() error {
	if c.Name == "" {
		return derrors.Validation("configuration name is required").Build()
	}
	if c.Scraping.RateLimitMS != nil && *c.Scraping.RateLimitMS < 0 {
		return derrors.Validation("scraping.rate_limit_ms must not be negative").
			With("rate_limit_ms", *c.Scraping.RateLimitMS).
			Build()
	}
	return nil
}
