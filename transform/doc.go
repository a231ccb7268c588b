// Package transform applies a function to every scalar leaf of a
// configuration tree.
//
// Import path: github.com/erraggy/cfgtools/transform
//
// [Map] walks a tree recursively and rebuilds it with each scalar replaced by
// the callback's return value; mapping keys, sequence ordering, and nesting
// are preserved exactly. The callback receives the scalar's
// [github.com/erraggy/cfgtools/keypath.Path] from the root, so it can act on
// position as well as value — the classic use is resolving environment
// variable placeholders, exposed directly as [ExpandEnv].
//
// Trees are required to be acyclic, but nothing upstream enforces that, so
// the walk is depth-bounded: exceeding the bound fails with a CycleError,
// distinct from the ShapeError raised for values outside the
// mapping/sequence/scalar shape. Use [Mapper] to adjust the bound for
// unusually deep documents.
package transform
