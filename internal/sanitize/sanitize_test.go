package sanitize

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var safePattern = regexp.MustCompile(`^[a-z0-9_.]*(-[a-z0-9_.]+)*$`)

// isSafe reports whether s has the shape Name always produces.
func isSafe(s string) bool {
	return !strings.HasPrefix(s, "-") && safePattern.MatchString(s)
}

func TestName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"API & Components", "api-and-components"},
		{"Getting Started / Install", "getting-started-install"},
		{"  --Weird__Name--  ", "weird__name"},
		{`Windows\Paths`, "windows-paths"},
		{"v1.2 Release Notes", "v1.2-release-notes"},
		{"Café Ünïcode", "caf-ncode"},
		{"Hooks (useState)", "hooks-usestate"},
		{"a - b", "a-b"},
		{"R&D", "randd"},
		{"already-safe_name.md", "already-safe_name.md"},
		{"", ""},
		{"!!!", ""},
		{"日本語", ""},
		{"- / -", ""},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, Name(tc.in))
		})
	}
}

func TestName_OrderMatters(t *testing.T) {
	// "&" expands after separators are replaced, so "a&/b" keeps both words joined by "and-".
	require.Equal(t, "aand-b", Name("a&/b"))
	// Removal happens before collapsing, so hyphens separated only by dropped characters merge.
	require.Equal(t, "a-b", Name("a-!-b"))
}

func TestName_Properties(t *testing.T) {
	inputs := []string{
		"API & Components",
		"  --Weird__Name--  ",
		"Getting Started / Install",
		"----",
		"x--y---z",
		"Tabs\tand\nnewlines",
		"émoji 🚀 launch",
		`C:\Program Files\App`,
		"&&&",
		".hidden",
	}

	for _, in := range inputs {
		out := Name(in)
		require.Truef(t, isSafe(out), "Name(%q) = %q is not safe", in, out)
		require.Equalf(t, out, Name(out), "Name is not idempotent for %q", in)
		require.Equalf(t, out, Name(in), "Name is not deterministic for %q", in)
	}
}

func TestIsSafeHelper(t *testing.T) {
	require.True(t, isSafe("weird__name"))
	require.True(t, isSafe(""))
	require.False(t, isSafe("-lead"))
	require.False(t, isSafe("trail-"))
	require.False(t, isSafe("a--b"))
	require.False(t, isSafe("Upper"))
	require.False(t, isSafe("sp ace"))
}

func FuzzName(f *testing.F) {
	for _, seed := range []string{"API & Components", "  --Weird__Name--  ", "a/b\\c d", "", "日本"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, in string) {
		out := Name(in)
		if !isSafe(out) {
			t.Fatalf("Name(%q) = %q is not safe", in, out)
		}
		if again := Name(out); again != out {
			t.Fatalf("Name not idempotent: %q -> %q -> %q", in, out, again)
		}
	})
}
