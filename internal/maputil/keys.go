// Package maputil provides small helpers for working with string-keyed maps.
package maputil

import "sort"

// SortedKeys returns the keys of m in ascending order. A nil map yields an
// empty, non-nil slice so callers can range or marshal without nil checks.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
