package hierarchy

import (
	"strings"

	"github.com/erraggy/cfgtools/merge"
)

// Levels is a lazy, one-shot iterator over the configuration scopes that
// apply to an FQN, ordered least specific to most specific. Obtain one from
// [Search]; a fresh Search is needed to iterate again.
type Levels struct {
	current  any
	fqn      []string
	pos      int
	sentRoot bool
	done     bool
}

// Search descends root along fqn and returns the sequence of levels
// encountered: root itself first, then, for each segment present in the
// current mapping level, a deep copy of that segment's subtree. The descent
// stops at the first absent segment or at a level that is not a mapping —
// both are normal, not errors.
//
// An empty fqn yields root only. The sequence holds at most len(fqn)+1
// elements and each element is computed only when the consumer asks for it.
func Search(root map[string]any, fqn []string) *Levels {
	return &Levels{current: root, fqn: fqn}
}

// Next returns the next level and true, or nil and false once the descent
// has stopped.
func (l *Levels) Next() (any, bool) {
	if l.done {
		return nil, false
	}

	if !l.sentRoot {
		l.sentRoot = true
		return l.current, true
	}

	if l.pos >= len(l.fqn) {
		l.done = true
		return nil, false
	}

	level, ok := l.current.(map[string]any)
	if !ok {
		l.done = true
		return nil, false
	}

	value, ok := level[l.fqn[l.pos]]
	if !ok {
		l.done = true
		return nil, false
	}
	l.pos++
	l.current = value

	// Emitted levels are copies; descent continues on the original so later
	// copies are not copies-of-copies.
	return merge.Copy(value), true
}

// Collect drains the iterator and returns the remaining levels in order.
func (l *Levels) Collect() []any {
	var out []any
	for {
		level, ok := l.Next()
		if !ok {
			return out
		}
		out = append(out, level)
	}
}

// Resolve walks root along fqn and merges every mapping level into one
// effective configuration, most specific level winning per field under the
// merge package's override rules. Merging stops at the first non-mapping
// level: a scalar level is a leaf with no deeper scope beneath it.
//
// An FQN that matches nothing resolves to a copy of root alone.
func Resolve(root map[string]any, fqn []string) (map[string]any, error) {
	var scopes []map[string]any
	levels := Search(root, fqn)
	for {
		level, ok := levels.Next()
		if !ok {
			break
		}
		scope, ok := level.(map[string]any)
		if !ok {
			break
		}
		scopes = append(scopes, scope)
	}
	return merge.MergeMaps(scopes...)
}

// ParseFQN splits a dotted name like "analytics.staging.events" into its
// segments, dropping empty segments from stray or doubled dots. An empty or
// all-dots string yields nil.
func ParseFQN(s string) []string {
	var out []string
	for _, seg := range strings.Split(s, ".") {
		if seg = strings.TrimSpace(seg); seg != "" {
			out = append(out, seg)
		}
	}
	return out
}
