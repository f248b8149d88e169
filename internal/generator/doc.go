// Package generator writes a placeholder documentation tree for a configuration.
//
// A run is strictly sequential: the output root is created, INDEX.md and
// metadata.json are written, then every section directory and every page file
// follows in configuration order. Page-level problems (missing URL, a name that
// sanitizes to nothing, a failed write) are counted and reported; they never
// abort the run. Writes are paced by a token bucket so that consecutive page
// writes are at least scraping.rate_limit_ms apart.
package generator
