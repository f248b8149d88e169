package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinks(t *testing.T) {
	body := []byte("# Title\n\n" +
		"- [Quick Start](./learn/quick-start.md) - [/learn](https://react.dev/learn)\n" +
		"- ![logo](img/logo.png)\n" +
		"- <https://react.dev>\n")

	links := ExtractLinks(body)
	require.Equal(t, []Link{
		{Kind: LinkKindInline, Label: "Quick Start", Destination: "./learn/quick-start.md"},
		{Kind: LinkKindInline, Label: "/learn", Destination: "https://react.dev/learn"},
		{Kind: LinkKindImage, Label: "logo", Destination: "img/logo.png"},
		{Kind: LinkKindAuto, Label: "https://react.dev", Destination: "https://react.dev"},
	}, links)

	require.True(t, links[0].IsRelative())
	require.False(t, links[1].IsRelative())
	require.False(t, links[2].IsRelative())
}
