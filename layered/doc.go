// Package layered provides a read-only, map-like view over an ordered list
// of configuration sources where the most recently added source wins.
//
// Import path: github.com/erraggy/cfgtools/layered
//
// A [View] wraps its sources by reference — nothing is copied or merged.
// Lookups scan the sources from last-added to first-added and return the
// first hit, giving "last-registered wins" override semantics without the
// cost of an eager deep merge. This suits progressive layering: each scope
// appends its partial overrides as it is entered, and resolution happens
// only when a key is actually read.
//
//	view := layered.New(defaults)
//	view.Append(packageConfig)   // now highest priority
//	view.Append(entityConfig)    // now highest priority
//	timeout, err := view.Lookup("timeout")
//
// Key enumeration collapses duplicates: Keys returns the sorted union across
// all sources and Len counts that union, not the sum of source sizes.
//
// A View serializes Append/Extend against concurrent reads internally, so a
// single instance may be shared across goroutines. The sources themselves
// remain owned by the caller: mutating a source mapping's contents while
// another goroutine reads through the view still requires external
// coordination.
package layered
