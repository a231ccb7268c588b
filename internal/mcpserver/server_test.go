package mcpserver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFormat(t *testing.T) {
	t.Run("empty uses configured default", func(t *testing.T) {
		format, err := resolveFormat("")
		require.NoError(t, err)
		assert.Equal(t, cfg.OutputFormat, format)
	})

	t.Run("explicit yaml", func(t *testing.T) {
		format, err := resolveFormat("yaml")
		require.NoError(t, err)
		assert.Equal(t, "yaml", format)
	})

	t.Run("explicit json", func(t *testing.T) {
		format, err := resolveFormat("json")
		require.NoError(t, err)
		assert.Equal(t, "json", format)
	})

	t.Run("unknown format rejected", func(t *testing.T) {
		_, err := resolveFormat("toml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "toml")
	})
}

func TestMarshalTree(t *testing.T) {
	tree := map[string]any{"a": 1, "b": []any{"x"}}

	t.Run("yaml", func(t *testing.T) {
		doc, err := marshalTree(tree, "yaml")
		require.NoError(t, err)
		assert.Contains(t, doc, "a: 1")
		assert.Contains(t, doc, "- x")
	})

	t.Run("json", func(t *testing.T) {
		doc, err := marshalTree(tree, "json")
		require.NoError(t, err)
		assert.Contains(t, doc, `"a": 1`)
	})
}

func TestSanitizeError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Empty(t, sanitizeError(nil))
	})

	t.Run("absolute paths redacted", func(t *testing.T) {
		err := errors.New("reading file /home/alice/secrets/config.yaml: permission denied")
		got := sanitizeError(err)
		assert.NotContains(t, got, "/home/alice")
		assert.Contains(t, got, "<path>")
	})

	t.Run("plain message untouched", func(t *testing.T) {
		err := errors.New("name is required")
		assert.Equal(t, "name is required", sanitizeError(err))
	})
}
