package layered

import (
	"sync"

	"github.com/erraggy/cfgtools/cfgerrors"
	"github.com/erraggy/cfgtools/internal/maputil"
)

// View is a read-only mapping view over an ordered list of sources.
// The most recently added source has the highest priority. The zero value
// is an empty view ready for use.
type View struct {
	mu      sync.RWMutex
	sources []map[string]any
}

// New creates a View over the given sources. Sources are referenced, not
// copied; the last argument starts out with the highest priority.
func New(sources ...map[string]any) *View {
	return &View{sources: sources}
}

// Append adds one more source, which becomes the new highest-priority
// (first-scanned) source.
func (v *View) Append(source map[string]any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sources = append(v.sources, source)
}

// Extend appends each source in order; the last one in the slice ends up
// with the highest priority.
func (v *View) Extend(sources []map[string]any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sources = append(v.sources, sources...)
}

// Lookup scans sources from most recently appended to least recently
// appended and returns the value from the first source containing key.
// It fails with a KeyNotFoundError when no source contains the key.
func (v *View) Lookup(key string) (any, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for i := len(v.sources) - 1; i >= 0; i-- {
		if value, ok := v.sources[i][key]; ok {
			return value, nil
		}
	}
	return nil, &cfgerrors.KeyNotFoundError{Key: key, Sources: len(v.sources)}
}

// Get is the recoverable variant of Lookup: it returns the highest-priority
// value for key and whether any source contained it.
func (v *View) Get(key string) (any, bool) {
	value, err := v.Lookup(key)
	return value, err == nil
}

// Contains reports whether any source contains key.
func (v *View) Contains(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Keys returns the sorted union of keys across all sources. A key defined by
// several sources appears once.
func (v *View) Keys() []string {
	return maputil.SortedKeys(v.keyset())
}

// Len returns the size of the key union, not the sum of source sizes.
func (v *View) Len() int {
	return len(v.keyset())
}

// Flatten materializes the view into a single mapping holding the effective
// value for every key. The result is a fresh top-level map; values are
// shared with the underlying sources.
func (v *View) Flatten() map[string]any {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make(map[string]any)
	for _, source := range v.sources {
		for k, value := range source {
			out[k] = value
		}
	}
	return out
}

func (v *View) keyset() map[string]struct{} {
	v.mu.RLock()
	defer v.mu.RUnlock()
	keys := make(map[string]struct{})
	for _, source := range v.sources {
		for k := range source {
			keys[k] = struct{}{}
		}
	}
	return keys
}
