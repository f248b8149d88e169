// Package markdown wraps goldmark for read-only analysis of generated documents.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Document is a parsed Markdown body.
type Document struct {
	source []byte
	root   gmast.Node
}

// Parse parses body into a Document.
func Parse(body []byte) *Document {
	md := goldmark.New()
	return &Document{
		source: body,
		root:   md.Parser().Parse(text.NewReader(body)),
	}
}

// Links returns every link, image and autolink in document order.
func (d *Document) Links() []Link {
	links := make([]Link, 0)
	_ = gmast.Walk(d.root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.AutoLink:
			url := string(node.URL(d.source))
			links = append(links, Link{Kind: LinkKindAuto, Label: url, Destination: url})
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Label: d.plainText(node), Destination: string(node.Destination)})
		case *gmast.Link:
			links = append(links, Link{Kind: LinkKindInline, Label: d.plainText(node), Destination: string(node.Destination)})
		}
		return gmast.WalkContinue, nil
	})
	return links
}

// ExtractLinks parses body and returns its links.
func ExtractLinks(body []byte) []Link {
	return Parse(body).Links()
}

// plainText concatenates the text segments below n.
func (d *Document) plainText(n gmast.Node) string {
	var buf bytes.Buffer
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *gmast.Text:
			buf.Write(t.Segment.Value(d.source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *gmast.String:
			buf.Write(t.Value)
		}
		return gmast.WalkContinue, nil
	})
	return buf.String()
}
