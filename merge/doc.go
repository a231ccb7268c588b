// Package merge implements deep structural merging of configuration trees.
//
// Import path: github.com/erraggy/cfgtools/merge
//
// A configuration tree is the value shape produced by YAML/JSON parsing:
// mappings (map[string]any), sequences ([]any), and scalars. [Merge] combines
// any number of trees into one fresh tree, later arguments overriding earlier
// ones per key:
//
//   - Mappings merge recursively.
//   - Sequences concatenate, with the later argument's items placed first.
//   - Scalars replace the earlier value outright.
//
// The sequence rule is deliberately asymmetric: scalars and mappings are
// right-biased (later argument wins), while a later argument's list entries
// are prepended ahead of the inherited ones. A scope that layers on top of
// another therefore adds its own list items in front of what it inherits
// rather than replacing them.
//
// Results never alias their inputs: mutating a merged tree afterward cannot
// affect any argument, and vice versa. [Copy] exposes the same full
// structural copy on its own, and [Shallow] provides the single-level
// last-wins variant.
//
// When two arguments disagree about the shape of a value — a mapping in one
// and a non-mapping in the other — Merge fails with a
// [github.com/erraggy/cfgtools/cfgerrors.MergeError] rather than silently
// coercing either side.
package merge
