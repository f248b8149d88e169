package frontmatter

import (
	"bytes"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// SerializeYAML encodes fields without delimiters. Mapping keys are emitted in
// sorted order at every depth, so equal maps give equal bytes.
func SerializeYAML(fields map[string]any) ([]byte, error) {
	if len(fields) == 0 {
		return []byte{}, nil
	}
	doc, err := toNode(fields)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	err = enc.Encode(doc)
	if cerr := enc.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// toNode builds the node tree by hand for maps only. Scalars and sequences go
// through yaml.v3's own encoder, which already picks a stable representation.
func toNode(v any) (*yaml.Node, error) {
	m, ok := v.(map[string]any)
	if !ok {
		n := new(yaml.Node)
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		return n, nil
	}

	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		child, err := toNode(m[k])
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, child)
	}
	return n, nil
}
