package merge

import (
	"fmt"

	"github.com/erraggy/cfgtools/cfgerrors"
	"github.com/erraggy/cfgtools/keypath"
)

// Merge combines any number of configuration trees into a single fresh tree.
//
// With no arguments it returns nil. With one argument it returns a deep copy
// of that argument. With two or more, arguments are merged pairwise
// left-to-right; for each key present in the later (source) argument:
//
//   - a mapping value is merged recursively into the destination's mapping
//     at that key (an empty mapping is created when the key is absent)
//   - a sequence value is prepended ahead of the destination's existing
//     sequence at that key, or used as-is when the key is absent
//   - any other value replaces the destination's value at that key
//
// Keys present only in the destination are preserved. An explicit nil in the
// destination is treated the same as an absent key.
//
// Merge returns a MergeError when the same key holds a mapping in one
// argument and a non-mapping in the other, or a sequence in one and a
// non-sequence, non-nil value in the other. The result never aliases any
// container reachable from the inputs.
func Merge(values ...any) (any, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) == 1 {
		return Copy(values[0]), nil
	}

	acc, err := Merge(values[:len(values)-1]...)
	if err != nil {
		return nil, err
	}

	last := values[len(values)-1]
	dst, ok := acc.(map[string]any)
	if !ok {
		return nil, &cfgerrors.MergeError{
			DestType:   typeName(acc),
			SourceType: typeName(last),
			Message:    "merge arguments must be mappings",
		}
	}
	src, ok := last.(map[string]any)
	if !ok {
		return nil, &cfgerrors.MergeError{
			DestType:   typeName(acc),
			SourceType: typeName(last),
			Message:    "merge arguments must be mappings",
		}
	}

	if err := mergeInto(dst, src, keypath.Root()); err != nil {
		return nil, err
	}
	return dst, nil
}

// MergeMaps is a convenience wrapper over Merge for callers that hold their
// scopes as mappings already; the result is always a mapping.
func MergeMaps(values ...map[string]any) (map[string]any, error) {
	if len(values) == 0 {
		return nil, nil
	}
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	merged, err := Merge(args...)
	if err != nil {
		return nil, err
	}
	out, _ := merged.(map[string]any)
	return out, nil
}

// mergeInto merges src into dst in place. dst is owned by the merge (already
// a fresh copy); values taken from src are copied before insertion.
func mergeInto(dst, src map[string]any, path keypath.Path) error {
	for key, value := range src {
		if err := mergeItem(dst, key, value, path); err != nil {
			return err
		}
	}
	return nil
}

// mergeItem applies the per-key override rule for one source value.
func mergeItem(dst map[string]any, key string, value any, path keypath.Path) error {
	existing, present := dst[key]
	if existing == nil {
		present = false
	}

	switch src := value.(type) {
	case map[string]any:
		if !present {
			node := make(map[string]any, len(src))
			dst[key] = node
			return mergeInto(node, src, path.Child(key))
		}
		node, ok := existing.(map[string]any)
		if !ok {
			return mismatch(key, path, existing, src)
		}
		return mergeInto(node, src, path.Child(key))

	case []any:
		if !present {
			dst[key] = Copy(src)
			return nil
		}
		tail, ok := existing.([]any)
		if !ok {
			return mismatch(key, path, existing, src)
		}
		head, _ := Copy(src).([]any)
		merged := make([]any, 0, len(head)+len(tail))
		merged = append(merged, head...)
		merged = append(merged, tail...)
		dst[key] = merged
		return nil

	default:
		if present {
			if _, isMap := existing.(map[string]any); isMap {
				return mismatch(key, path, existing, value)
			}
		}
		dst[key] = Copy(value)
		return nil
	}
}

func mismatch(key string, path keypath.Path, dst, src any) error {
	e := &cfgerrors.MergeError{
		Key:        key,
		DestType:   typeName(dst),
		SourceType: typeName(src),
	}
	if !path.IsRoot() {
		e.Path = path.String()
	}
	return e
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

// Shallow merges mappings at the top level only, later maps winning per key.
// The returned map is fresh but its values are shared with the inputs; use
// Merge when full copy semantics are needed.
func Shallow(maps ...map[string]any) map[string]any {
	if len(maps) == 0 {
		return nil
	}
	out := make(map[string]any)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
