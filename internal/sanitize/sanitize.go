// Package sanitize maps human-readable titles and category names to
// deterministic, filesystem-safe path segments.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// separators become hyphens before filtering so word boundaries survive.
	separators  = strings.NewReplacer("/", "-", `\`, "-", " ", "-")
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// Name returns the sanitized form of name.
//
// The steps run in a fixed order: path separators and spaces become hyphens,
// "&" becomes "and", every character outside [A-Za-z0-9-_.] is dropped, runs
// of hyphens collapse to one, leading and trailing hyphens are trimmed and the
// result is lower-cased. Name may return "" when nothing survives filtering.
func Name(name string) string {
	s := separators.Replace(name)
	s = strings.ReplaceAll(s, "&", "and")
	s = strings.Map(keepAllowed, s)
	s = multiHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return strings.ToLower(s)
}

func keepAllowed(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return r
	case r == '-' || r == '_' || r == '.':
		return r
	default:
		return -1
	}
}
