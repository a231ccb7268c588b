package transform

import "github.com/erraggy/cfgtools/keypath"

// Check verifies that value is a well-formed configuration tree: mappings,
// sequences, and scalars only, with no cycles. It returns the ShapeError or
// CycleError describing the first violation, or nil.
func Check(value any) error {
	_, err := Map(func(v any, _ keypath.Path) (any, error) { return v, nil }, value)
	return err
}
