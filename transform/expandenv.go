package transform

import (
	"os"

	"github.com/erraggy/cfgtools/keypath"
)

// ExpandEnv returns a copy of tree with ${var} and $var references in every
// string scalar replaced by the process environment, per os.Expand rules.
// Undefined variables expand to the empty string. Non-string scalars pass
// through unchanged.
func ExpandEnv(tree any) (any, error) {
	return ExpandEnvWith(tree, os.Getenv)
}

// ExpandEnvWith behaves like ExpandEnv but resolves variables through the
// given lookup function instead of the process environment.
func ExpandEnvWith(tree any, lookup func(string) string) (any, error) {
	return Map(func(value any, _ keypath.Path) (any, error) {
		if s, ok := value.(string); ok {
			return os.Expand(s, lookup), nil
		}
		return value, nil
	}, tree)
}
