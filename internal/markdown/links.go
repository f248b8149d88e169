package markdown

// LinkKind distinguishes the Markdown constructs a Link came from.
type LinkKind string

const (
	LinkKindInline LinkKind = "inline"
	LinkKindImage  LinkKind = "image"
	LinkKindAuto   LinkKind = "auto"
)

// Link is a link-like construct found in a document.
type Link struct {
	Kind        LinkKind
	Label       string
	Destination string
}

// IsRelative reports whether the destination points inside the document tree.
func (l Link) IsRelative() bool {
	return l.Kind == LinkKindInline && (len(l.Destination) > 0 && l.Destination[0] == '.')
}
