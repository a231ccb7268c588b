// Package aliases canonicalizes aliased configuration keys.
//
// Import path: github.com/erraggy/cfgtools/aliases
//
// Configuration surfaces often accept several spellings for the same
// setting ("post-hook" vs "post_hook"). [Translate] rewrites a mapping so
// every key appears under its canonical name, failing with an AliasError
// when two given keys collapse onto the same canonical key — silently
// picking one would hide an authoring mistake.
//
//	canonical, err := aliases.Translate(raw, map[string]string{
//		"post-hook": "post_hook",
//		"pre-hook":  "pre_hook",
//	}, aliases.WithRecurse())
//
// [WithRecurse] applies the translation through nested mappings and
// sequence elements; [WithFoldCase] matches alias keys case-insensitively
// using Unicode case folding.
package aliases
