package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Scalar is a string field that also accepts a bare number or boolean, so
// `"version": 2.1` and `"version": "2.1"` both render as 2.1.
type Scalar string

// UnmarshalJSON keeps the literal text of numbers and booleans. null leaves s empty.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v.(type) {
	case float64, bool:
		*s = Scalar(data)
		return nil
	default:
		return fmt.Errorf("expected a string, number or boolean, got %s", data)
	}
}

// UnmarshalYAML accepts any scalar node. The node's literal text is kept.
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", node.Line)
	}
	if node.Tag == "!!null" {
		*s = ""
		return nil
	}
	*s = Scalar(node.Value)
	return nil
}
