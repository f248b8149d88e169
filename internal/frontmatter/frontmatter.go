// Package frontmatter reads and writes the YAML block at the top of generated pages.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

const delimiter = "---\n"

// ErrMissingClosingDelimiter indicates an opening delimiter without a closing one.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Split separates raw frontmatter from the body. had is false when content does
// not start with a delimiter, in which case body is the full input.
func Split(content []byte) (raw []byte, body []byte, had bool, err error) {
	if !bytes.HasPrefix(content, []byte(delimiter)) {
		return nil, content, false, nil
	}
	rest := content[len(delimiter):]
	if bytes.HasPrefix(rest, []byte(delimiter)) {
		return []byte{}, rest[len(delimiter):], true, nil
	}
	idx := bytes.Index(rest, []byte("\n"+delimiter))
	if idx < 0 {
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return rest[:idx+1], rest[idx+1+len(delimiter):], true, nil
}

// Parse decodes raw frontmatter into a map.
func Parse(raw []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(raw) == 0 {
		return fields, nil
	}
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// Join prepends fields as a delimited YAML block to body. Empty fields return body unchanged.
func Join(fields map[string]any, body []byte) ([]byte, error) {
	if len(fields) == 0 {
		return body, nil
	}
	raw, err := SerializeYAML(fields)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 2*len(delimiter)+len(raw)+len(body))
	out = append(out, delimiter...)
	out = append(out, raw...)
	out = append(out, delimiter...)
	out = append(out, body...)
	return out, nil
}
