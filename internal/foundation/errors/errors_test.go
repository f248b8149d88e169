package errors

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	t.Run("fields", func(t *testing.T) {
		err := New(CategoryConfig, "invalid configuration").
			With("path", "configs/react.json").
			With("line", 3).
			Build()

		require.Equal(t, CategoryConfig, err.Category)
		require.Equal(t, "configs/react.json", err.Field("path"))
		require.Empty(t, err.Field("line"), "non-string fields are not returned as text")
		require.Empty(t, err.Field("missing"))
	})

	t.Run("wrap keeps the cause reachable", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := Wrap(cause, CategoryFileSystem, "write page").Build()

		require.ErrorIs(t, err, cause)
		require.Equal(t, "[filesystem] write page: permission denied", err.Error())
	})

	t.Run("category survives fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("load: %w", NotFound("configuration file not found").Build())

		require.True(t, HasCategory(err, CategoryNotFound))
		require.False(t, HasCategory(err, CategoryConfig))
		require.False(t, HasCategory(errors.New("plain"), CategoryNotFound))
		require.ErrorIs(t, err, NotFound("configuration file not found").Build())
	})

	t.Run("With copies", func(t *testing.T) {
		base := Validation("name is required").Build()
		extended := base.With("path", "a.json")

		require.Empty(t, base.Field("path"))
		require.Equal(t, "a.json", extended.Field("path"))
	})
}

func TestCategoryExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"nil", nil, 0},
		{"plain", errors.New("boom"), 1},
		{"validation", Validation("name is required").Build(), 2},
		{"config", New(CategoryConfig, "malformed configuration").Build(), 7},
		{"not found", NotFound("configuration file not found").Build(), 7},
		{"filesystem", New(CategoryFileSystem, "write index").Build(), 11},
		{"internal", New(CategoryInternal, "unexpected").Build(), 10},
		{"unknown category", New(Category("other"), "?").Build(), 1},
	}

	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.code, adapter.ExitCodeFor(tc.err))
		})
	}
}

func TestCLIErrorAdapter_Handle(t *testing.T) {
	var out, logs bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil))).WithOutput(&out)

	err := NotFound("configuration file not found").With("path", "missing.json").Build()

	require.Equal(t, 7, adapter.Handle(err))
	require.Equal(t, "❌ Error: configuration file not found: missing.json\n", out.String())
	require.Contains(t, logs.String(), "category=not_found")
	require.Contains(t, logs.String(), "path=missing.json")
}

func TestCLIErrorAdapter_Verbose(t *testing.T) {
	adapter := NewCLIErrorAdapter(true, nil)
	err := Wrap(errors.New("EOF"), CategoryConfig, "malformed configuration").With("path", "a.yaml").Build()

	require.Equal(t, "❌ Error: [config] malformed configuration: EOF", adapter.FormatError(err))
	require.Empty(t, adapter.FormatError(nil))
}
