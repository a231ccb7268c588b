package transform

import (
	"fmt"

	"github.com/erraggy/cfgtools/cfgerrors"
	"github.com/erraggy/cfgtools/keypath"
)

// DefaultMaxDepth is the recursion bound used by Map. Real configuration
// trees are a handful of levels deep; hitting this bound means a container
// contains itself.
const DefaultMaxDepth = 1000

// Func transforms one scalar leaf. It receives the scalar's value and its
// keypath from the root, and returns the replacement value. Returning an
// error aborts the walk and propagates to the caller unchanged.
type Func func(value any, path keypath.Path) (any, error)

// Mapper walks configuration trees with a configurable recursion bound.
type Mapper struct {
	// MaxDepth is the maximum recursion depth before the walk fails with a
	// CycleError. If zero or negative, DefaultMaxDepth is used.
	MaxDepth int
}

// New creates a Mapper with default settings.
func New() *Mapper {
	return &Mapper{MaxDepth: DefaultMaxDepth}
}

// Map applies fn to every scalar leaf of value, returning a new tree of
// identical shape. The input is never modified. See the package-level [Map]
// for the error contract.
func (m *Mapper) Map(fn Func, value any) (any, error) {
	limit := m.MaxDepth
	if limit <= 0 {
		limit = DefaultMaxDepth
	}
	return walk(fn, value, keypath.Root(), limit, limit)
}

// Map applies fn to every scalar leaf of value using the default recursion
// bound, returning a new tree of identical shape.
//
// A value outside the mapping/sequence/scalar shape fails with a ShapeError
// identifying the offending keypath and type. A tree deeper than the
// recursion bound fails with a CycleError. On failure no partial result is
// returned.
func Map(fn Func, value any) (any, error) {
	return walk(fn, value, keypath.Root(), DefaultMaxDepth, DefaultMaxDepth)
}

// walk recurses into containers, extending the keypath per level, and hands
// scalars to fn. depth is tracked by shrinking the remaining budget.
func walk(fn Func, value any, path keypath.Path, limit, remaining int) (any, error) {
	if remaining <= 0 {
		return nil, &cfgerrors.CycleError{Path: path.String(), Limit: limit}
	}

	switch v := value.(type) {
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			mapped, err := walk(fn, item, path.Elem(i), limit, remaining-1)
			if err != nil {
				return nil, err
			}
			out[i] = mapped
		}
		return out, nil

	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			mapped, err := walk(fn, item, path.Child(k), limit, remaining-1)
			if err != nil {
				return nil, err
			}
			out[k] = mapped
		}
		return out, nil

	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fn(v, path)

	default:
		return nil, &cfgerrors.ShapeError{
			Path:     path.String(),
			Value:    value,
			TypeName: fmt.Sprintf("%T", value),
		}
	}
}
