// Package keypath identifies the position of a single value inside a
// configuration tree.
//
// A [Path] is an ordered sequence of segments from the root of the tree to
// one value: mapping keys ([Key]) and sequence indices ([Index]). The root is
// the empty path. Paths render in dotted/bracketed form for diagnostics:
//
//	keypath.Root().Child("models").Child("analytics").Elem(0).String()
//	// "models.analytics[0]"
//
// Paths are value-like: Child and Elem return fresh paths and never alias
// the receiver's backing storage, so a path handed to a callback remains
// valid after the traversal moves on.
package keypath

import (
	"strconv"
	"strings"
)

// Segment is a single step in a Path: either a mapping key or a sequence index.
type Segment interface {
	// String renders the segment alone, without any joining punctuation.
	String() string

	segment()
}

// Key is a mapping-key segment.
type Key string

func (k Key) String() string { return string(k) }

func (k Key) segment() {}

// Index is a sequence-index segment.
type Index int

func (i Index) String() string { return strconv.Itoa(int(i)) }

func (i Index) segment() {}

// Path is an ordered sequence of segments locating one value in a tree.
// The zero value is the root path.
type Path []Segment

// Root returns the empty path identifying the root of a tree.
func Root() Path {
	return nil
}

// Child returns a new path extended by the mapping key.
// The receiver is not modified.
func (p Path) Child(key string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, Key(key))
}

// Elem returns a new path extended by the sequence index.
// The receiver is not modified.
func (p Path) Elem(i int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, Index(i))
}

// Len returns the number of segments in the path.
func (p Path) Len() int {
	return len(p)
}

// IsRoot reports whether the path is the empty root path.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// String renders the path in dotted form with bracketed indices,
// e.g. "models.analytics[2].tags". The root path renders as "$".
func (p Path) String() string {
	if len(p) == 0 {
		return "$"
	}
	var b strings.Builder
	for i, seg := range p {
		switch s := seg.(type) {
		case Key:
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(string(s))
		case Index:
			b.WriteByte('[')
			b.WriteString(s.String())
			b.WriteByte(']')
		}
	}
	return b.String()
}

// Equal reports whether two paths have identical segments.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}
