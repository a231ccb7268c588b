package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingsTree() map[string]any {
	return map[string]any{
		"timeout": 30,
		"pkgA": map[string]any{
			"timeout": 10,
			"modelA": map[string]any{
				"timeout": 5,
			},
		},
	}
}

func TestSearch(t *testing.T) {
	t.Run("full descent", func(t *testing.T) {
		root := settingsTree()
		got := Search(root, []string{"pkgA", "modelA"}).Collect()

		require.Len(t, got, 3)
		assert.Equal(t, root, got[0].(map[string]any))
		assert.Equal(t, map[string]any{
			"timeout": 10,
			"modelA":  map[string]any{"timeout": 5},
		}, got[1])
		assert.Equal(t, map[string]any{"timeout": 5}, got[2])
	})

	t.Run("absent first segment stops immediately", func(t *testing.T) {
		root := settingsTree()
		got := Search(root, []string{"pkgB"}).Collect()

		require.Len(t, got, 1)
		assert.Equal(t, root, got[0].(map[string]any))
	})

	t.Run("absent middle segment stops partway", func(t *testing.T) {
		got := Search(settingsTree(), []string{"pkgA", "modelB", "ignored"}).Collect()
		require.Len(t, got, 2)
	})

	t.Run("empty fqn yields root only", func(t *testing.T) {
		root := settingsTree()
		got := Search(root, nil).Collect()
		require.Len(t, got, 1)
		assert.Equal(t, root, got[0].(map[string]any))
	})

	t.Run("scalar level ends the descent without failing", func(t *testing.T) {
		root := map[string]any{"pkgA": map[string]any{"enabled": true}}
		got := Search(root, []string{"pkgA", "enabled", "deeper"}).Collect()

		// root, the pkgA mapping, then the scalar leaf; "deeper" cannot match.
		require.Len(t, got, 3)
		assert.Equal(t, true, got[2])
	})

	t.Run("descended levels are deep copies", func(t *testing.T) {
		root := settingsTree()
		got := Search(root, []string{"pkgA"}).Collect()
		require.Len(t, got, 2)

		got[1].(map[string]any)["timeout"] = 99
		assert.Equal(t, 10, root["pkgA"].(map[string]any)["timeout"],
			"mutating an emitted level must not affect the tree")
	})
}

func TestSearchLaziness(t *testing.T) {
	t.Run("levels are computed on demand", func(t *testing.T) {
		root := settingsTree()
		levels := Search(root, []string{"pkgA"})

		// Mutate after Search but before consumption; the lazy descent
		// must observe the mutation.
		root["pkgA"].(map[string]any)["added"] = "later"

		first, ok := levels.Next()
		require.True(t, ok)
		assert.Equal(t, root, first.(map[string]any))

		second, ok := levels.Next()
		require.True(t, ok)
		assert.Equal(t, "later", second.(map[string]any)["added"])
	})

	t.Run("iterator is one-shot", func(t *testing.T) {
		levels := Search(settingsTree(), nil)
		_, ok := levels.Next()
		require.True(t, ok)

		for i := 0; i < 3; i++ {
			_, ok = levels.Next()
			assert.False(t, ok, "exhausted iterator must stay exhausted")
		}
		assert.Empty(t, levels.Collect())
	})
}

func TestResolve(t *testing.T) {
	t.Run("most specific level wins", func(t *testing.T) {
		effective, err := Resolve(settingsTree(), []string{"pkgA", "modelA"})
		require.NoError(t, err)
		assert.Equal(t, 5, effective["timeout"])
	})

	t.Run("inherited fields survive", func(t *testing.T) {
		root := map[string]any{
			"materialized": "view",
			"pkgA": map[string]any{
				"modelA": map[string]any{"timeout": 5},
			},
		}
		effective, err := Resolve(root, []string{"pkgA", "modelA"})
		require.NoError(t, err)
		assert.Equal(t, "view", effective["materialized"])
		assert.Equal(t, 5, effective["timeout"])
	})

	t.Run("list entries from deeper scopes come first", func(t *testing.T) {
		root := map[string]any{
			"tags": []any{"base"},
			"pkgA": map[string]any{"tags": []any{"pkg"}},
		}
		effective, err := Resolve(root, []string{"pkgA"})
		require.NoError(t, err)
		assert.Equal(t, []any{"pkg", "base"}, effective["tags"])
	})

	t.Run("unmatched fqn resolves to root copy", func(t *testing.T) {
		root := settingsTree()
		effective, err := Resolve(root, []string{"pkgZ"})
		require.NoError(t, err)
		assert.Equal(t, root, effective)

		effective["timeout"] = 0
		assert.Equal(t, 30, root["timeout"], "resolved config must not alias the tree")
	})

	t.Run("scalar leaf stops the merge", func(t *testing.T) {
		root := map[string]any{"pkgA": map[string]any{"enabled": true}}
		effective, err := Resolve(root, []string{"pkgA", "enabled"})
		require.NoError(t, err)
		assert.Equal(t, true, effective["enabled"])
	})
}

func TestParseFQN(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "simple", input: "pkgA.modelA", expected: []string{"pkgA", "modelA"}},
		{name: "single segment", input: "pkgA", expected: []string{"pkgA"}},
		{name: "empty string", input: "", expected: nil},
		{name: "doubled dots collapse", input: "a..b", expected: []string{"a", "b"}},
		{name: "stray dots trimmed", input: ".a.b.", expected: []string{"a", "b"}},
		{name: "whitespace segments dropped", input: "a. .b", expected: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseFQN(tt.input))
		})
	}
}
