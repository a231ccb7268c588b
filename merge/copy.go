package merge

// Copy creates a full structural copy of a configuration tree.
//
// Mappings and sequences are copied recursively so the result shares no
// mutable container with the input. Scalars are returned as-is; values
// outside the tree shape are also returned as-is (the merge rules never
// descend into them).
func Copy(value any) any {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = Copy(item)
		}
		return out

	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Copy(item)
		}
		return out

	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		// Primitives are immutable, return as-is
		return v

	default:
		return v
	}
}
