// Package hierarchy walks a nested settings tree along a fully qualified
// name (FQN) and resolves the configuration scopes that apply to it.
//
// Import path: github.com/erraggy/cfgtools/hierarchy
//
// An FQN is the ordered list of name segments addressing one entity in a
// naming hierarchy, e.g. package → subdirectory → entity. [Search] descends a
// tree segment by segment and emits every level it passes through, from the
// root (least specific) down to the entity itself (most specific), stopping
// at the first absent segment. A partial hierarchy is valid and common: not
// every entity has settings at every level.
//
// The emitted levels feed naturally into
// [github.com/erraggy/cfgtools/merge.Merge] so that more specific scopes
// override less specific ones; [Resolve] packages that composition directly.
//
//	levels := hierarchy.Search(root, []string{"analytics", "staging", "events"})
//	for {
//		level, ok := levels.Next()
//		if !ok {
//			break
//		}
//		// least specific first
//	}
//
// Search results are lazy and one-shot: each level is produced on demand and
// the iterator cannot be restarted. Call Search again to traverse twice.
package hierarchy
