// Package cfgerrors provides structured error types for cfgtools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
package cfgerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrTypeMismatch indicates two configuration scopes hold incompatible
	// types for the same key.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrShape indicates a value outside the mapping/sequence/scalar tree shape.
	ErrShape = errors.New("shape error")

	// ErrCycle indicates a cycle was detected in a configuration tree.
	ErrCycle = errors.New("cycle detected")

	// ErrKeyNotFound indicates a key was absent from every layered source.
	ErrKeyNotFound = errors.New("key not found")

	// ErrAlias indicates duplicate keys mapping to the same canonical key.
	ErrAlias = errors.New("alias error")
)

// ParseError represents a failure to parse configuration text into a tree.
// This includes YAML/JSON deserialization errors and top-level shape issues.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// MergeError represents a type mismatch encountered while merging
// configuration scopes: the same key holds a mapping in one scope and a
// non-mapping in another, or a sequence collides with a scalar.
type MergeError struct {
	// Key is the mapping key where the collision occurred
	Key string
	// Path is the dotted path from the root to the colliding key (may be empty)
	Path string
	// DestType is the Go type name of the destination value
	DestType string
	// SourceType is the Go type name of the source value
	SourceType string
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *MergeError) Error() string {
	msg := "type mismatch"
	if e.Key != "" {
		if e.Path != "" {
			msg += fmt.Sprintf(" at %s.%s", e.Path, e.Key)
		} else {
			msg += fmt.Sprintf(" at %s", e.Key)
		}
	}
	if e.DestType != "" || e.SourceType != "" {
		msg += fmt.Sprintf(": cannot merge %s into %s", e.SourceType, e.DestType)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as MergeError has no underlying cause.
func (e *MergeError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *MergeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// ShapeError represents a value outside the tree shape contract: not a
// mapping, not a sequence, and not a scalar.
type ShapeError struct {
	// Path is the keypath from the root to the offending value
	Path string
	// Value is the offending value (may be nil)
	Value any
	// TypeName is the Go type name of the offending value
	TypeName string
}

// Error returns a human-readable error message.
func (e *ShapeError) Error() string {
	msg := "shape error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.TypeName != "" {
		msg += fmt.Sprintf(": expected mapping, sequence, or scalar, got %s", e.TypeName)
	}
	return msg
}

// Unwrap returns nil as ShapeError has no underlying cause.
func (e *ShapeError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

// CycleError represents an exceeded recursion bound while traversing a tree.
// Trees are required to be acyclic; hitting the bound means a container
// directly or transitively contains itself.
type CycleError struct {
	// Path is the keypath at which the bound was exceeded
	Path string
	// Limit is the recursion depth limit that was exceeded
	Limit int
}

// Error returns a human-readable error message.
func (e *CycleError) Error() string {
	msg := "cycle detected"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (depth limit: %d)", e.Limit)
	}
	return msg
}

// Unwrap returns nil as CycleError has no underlying cause.
func (e *CycleError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}

// KeyNotFoundError represents a lookup miss across every source of a
// layered view.
type KeyNotFoundError struct {
	// Key is the key that was not found
	Key string
	// Sources is the number of sources that were scanned
	Sources int
}

// Error returns a human-readable error message.
func (e *KeyNotFoundError) Error() string {
	msg := "key not found"
	if e.Key != "" {
		msg += fmt.Sprintf(": %q", e.Key)
	}
	if e.Sources > 0 {
		msg += fmt.Sprintf(" in %d source(s)", e.Sources)
	}
	return msg
}

// Unwrap returns nil as KeyNotFoundError has no underlying cause.
func (e *KeyNotFoundError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// AliasError represents multiple given keys mapping to the same canonical
// key during alias translation.
type AliasError struct {
	// Canonical is the canonical key that was defined more than once
	Canonical string
	// Keys are the given keys that all map to Canonical
	Keys []string
}

// Error returns a human-readable error message.
func (e *AliasError) Error() string {
	msg := "alias error"
	if len(e.Keys) > 0 {
		msg += ": got duplicate keys ("
		for i, k := range e.Keys {
			if i > 0 {
				msg += ", "
			}
			msg += k
		}
		msg += ")"
	}
	if e.Canonical != "" {
		msg += fmt.Sprintf(" all map to %q", e.Canonical)
	}
	return msg
}

// Unwrap returns nil as AliasError has no underlying cause.
func (e *AliasError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *AliasError) Is(target error) bool {
	return target == ErrAlias
}
