// Package cfgerrors provides structured error types for the cfgtools library.
//
// Import path: github.com/erraggy/cfgtools/cfgerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides six core error types:
//
//   - [ParseError]: YAML/JSON parsing failures at the text-to-tree boundary
//   - [MergeError]: type mismatches between configuration scopes during a merge
//   - [ShapeError]: values outside the mapping/sequence/scalar tree shape
//   - [CycleError]: recursion bound exceeded while traversing a tree
//   - [KeyNotFoundError]: a key absent from every source of a layered view
//   - [AliasError]: multiple aliased keys mapping to the same canonical key
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrTypeMismatch]: Matches any [MergeError]
//   - [ErrShape]: Matches any [ShapeError]
//   - [ErrCycle]: Matches any [CycleError]
//   - [ErrKeyNotFound]: Matches any [KeyNotFoundError]
//   - [ErrAlias]: Matches any [AliasError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	effective, err := merge.Merge(defaults, overrides)
//	if errors.Is(err, cfgerrors.ErrTypeMismatch) {
//	    // Two scopes disagree about the shape of a setting
//	}
//
// Extract details with errors.As():
//
//	_, err := transform.Map(fn, tree)
//	var shapeErr *cfgerrors.ShapeError
//	if errors.As(err, &shapeErr) {
//	    log.Printf("bad value %v (%s) at %s", shapeErr.Value, shapeErr.TypeName, shapeErr.Path)
//	}
//
// CycleError and ShapeError are deliberately distinct so a caller can report
// "circular configuration" separately from a generic shape complaint.
package cfgerrors
