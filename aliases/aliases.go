package aliases

import (
	"golang.org/x/text/cases"

	"github.com/erraggy/cfgtools/cfgerrors"
	"github.com/erraggy/cfgtools/internal/maputil"
)

// Option configures a call to Translate.
type Option func(*config)

type config struct {
	recurse  bool
	foldCase bool
}

// WithRecurse applies the translation recursively: nested mappings are
// translated, and so are mapping elements inside sequences.
func WithRecurse() Option {
	return func(c *config) { c.recurse = true }
}

// WithFoldCase matches alias keys case-insensitively via Unicode case
// folding, so "Post-Hook" finds the "post-hook" alias. Keys with no alias
// entry keep their original spelling.
func WithFoldCase() Option {
	return func(c *config) { c.foldCase = true }
}

// Translate rewrites values so each key appears under its canonical name
// per aliasMap (given key → canonical key). Keys without an alias entry are
// kept as-is. The input mapping is never modified.
//
// Translate fails with an AliasError when two given keys map to the same
// canonical key — the caller authored the same setting twice.
func Translate(values map[string]any, aliasMap map[string]string, opts ...Option) (map[string]any, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	canon := canonicalizer(aliasMap, cfg.foldCase)
	return translate(values, canon, cfg.recurse)
}

// canonicalizer builds the given-key → canonical-key function, folding the
// alias table once up front when case-insensitive matching is requested.
func canonicalizer(aliasMap map[string]string, foldCase bool) func(string) string {
	if !foldCase {
		return func(key string) string {
			if canonical, ok := aliasMap[key]; ok {
				return canonical
			}
			return key
		}
	}

	folder := cases.Fold()
	folded := make(map[string]string, len(aliasMap))
	for given, canonical := range aliasMap {
		folded[folder.String(given)] = canonical
	}
	return func(key string) string {
		if canonical, ok := folded[folder.String(key)]; ok {
			return canonical
		}
		return key
	}
}

func translate(values map[string]any, canon func(string) string, recurse bool) (map[string]any, error) {
	result := make(map[string]any, len(values))

	// Sorted iteration keeps duplicate detection deterministic.
	for _, given := range maputil.SortedKeys(values) {
		value := values[given]
		canonical := canon(given)

		if _, dup := result[canonical]; dup {
			var keys []string
			for _, k := range maputil.SortedKeys(values) {
				if canon(k) == canonical {
					keys = append(keys, k)
				}
			}
			return nil, &cfgerrors.AliasError{Canonical: canonical, Keys: keys}
		}

		if recurse {
			translated, err := translateValue(value, canon)
			if err != nil {
				return nil, err
			}
			value = translated
		}
		result[canonical] = value
	}
	return result, nil
}

func translateValue(value any, canon func(string) string) (any, error) {
	switch v := value.(type) {
	case map[string]any:
		return translate(v, canon, true)
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			translated, err := translateValue(item, canon)
			if err != nil {
				return nil, err
			}
			items[i] = translated
		}
		return items, nil
	default:
		return value, nil
	}
}
