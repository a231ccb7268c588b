// Package loader parses YAML or JSON configuration text into trees.
//
// Import path: github.com/erraggy/cfgtools/loader
//
// loader is the text-to-tree boundary of cfgtools: it turns raw bytes into
// the map[string]any / []any / scalar shape the rest of the library operates
// on, and guarantees the result is a well-formed tree before handing it over.
// Format is detected from the file extension, falling back to a content
// sniff, so .json, .yaml, and .yml sources all work through the same entry
// points.
//
//	result, err := loader.Load("project.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	tree := result.Tree
//
// Parsing failures surface as a
// [github.com/erraggy/cfgtools/cfgerrors.ParseError] carrying the source
// identifier. No $ref resolution, inclusion, or schema validation happens
// here — only shape.
package loader
