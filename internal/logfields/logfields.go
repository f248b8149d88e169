package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyConfig     = "config"
	KeySection    = "section"
	KeyPage       = "page"
	KeyPath       = "path"
	KeyURL        = "url"
	KeyOutput     = "output"
	KeyWritten    = "written"
	KeyFailed     = "failed"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Config(path string) slog.Attr    { return slog.String(KeyConfig, path) }
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Page(title string) slog.Attr     { return slog.String(KeyPage, title) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Output(dir string) slog.Attr     { return slog.String(KeyOutput, dir) }
func Written(n int) slog.Attr         { return slog.Int(KeyWritten, n) }
func Failed(n int) slog.Attr          { return slog.Int(KeyFailed, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
