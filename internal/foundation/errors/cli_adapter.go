package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
)

// CLIErrorAdapter turns a run error into a log line, a user message and an exit code.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
}

// NewCLIErrorAdapter writes user messages to stderr. A nil logger uses slog.Default().
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{verbose: verbose, logger: logger, out: os.Stderr}
}

// WithOutput redirects user-facing messages.
func (a *CLIErrorAdapter) WithOutput(w io.Writer) *CLIErrorAdapter {
	a.out = w
	return a
}

// ExitCodeFor maps err to a process status: 0 for nil, 1 for unclassified errors.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if e, ok := As(err); ok {
		return e.Category.ExitCode()
	}
	return 1
}

// FormatError renders the single line shown to the user. Verbose mode prints the full chain.
func (a *CLIErrorAdapter) FormatError(err error) string {
	e, ok := As(err)
	switch {
	case err == nil:
		return ""
	case !ok || a.verbose:
		return "❌ Error: " + err.Error()
	case e.Field("path") != "":
		return fmt.Sprintf("❌ Error: %s: %s", e.Message, e.Field("path"))
	default:
		return "❌ Error: " + e.Message
	}
}

// Handle logs err, prints the user message and returns the exit code.
func (a *CLIErrorAdapter) Handle(err error) int {
	if err == nil {
		return 0
	}
	a.log(err)
	_, _ = fmt.Fprintln(a.out, a.FormatError(err))
	return a.ExitCodeFor(err)
}

func (a *CLIErrorAdapter) log(err error) {
	e, ok := As(err)
	if !ok {
		a.logger.Debug("Unclassified error", "error", err)
		return
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := []slog.Attr{slog.String("category", string(e.Category))}
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, e.Fields[k]))
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}
	a.logger.LogAttrs(context.Background(), slog.LevelError, e.Message, attrs...)
}
