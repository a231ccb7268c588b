// Package cfgtools provides tools for merging, searching, layering, and
// resolving tree-shaped configuration data.
//
// cfgtools operates over configuration trees as produced by YAML or JSON
// parsing: mappings (map[string]any), sequences ([]any), and scalars
// (numbers, strings, booleans, nil). It implements the resolution machinery
// needed when per-entity settings are spread across a hierarchy of scopes —
// global defaults, package-level settings, directory-level overrides, and
// leaf-entity overrides addressed by a dotted fully qualified name (FQN).
//
// # Overview
//
// The library consists of the following packages:
//
//   - merge: deep structural merge with most-specific-wins override rules
//   - transform: keypath-aware recursive transforms over every scalar leaf
//   - keypath: path values identifying a scalar's position inside a tree
//   - hierarchy: level-by-level descent of a settings tree along an FQN
//   - layered: a read-only layered-mapping view where the most recently
//     added source wins
//   - aliases: canonicalization of aliased configuration keys
//   - loader: YAML/JSON text to configuration tree parsing
//   - cfgerrors: structured error types shared by all packages
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/cfgtools
//
// # Quick Start
//
// Resolve the effective configuration for one entity:
//
//	import (
//		"github.com/erraggy/cfgtools/hierarchy"
//		"github.com/erraggy/cfgtools/loader"
//	)
//
//	result, err := loader.Load("project.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	effective, err := hierarchy.Resolve(result.Tree, []string{"analytics", "staging", "events"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("timeout: %v\n", effective["timeout"])
//
// Merge configuration scopes explicitly:
//
//	import "github.com/erraggy/cfgtools/merge"
//
//	effective, err := merge.Merge(defaults, packageConfig, modelConfig)
//
// Layer partial overrides without copying:
//
//	import "github.com/erraggy/cfgtools/layered"
//
//	view := layered.New(defaults)
//	view.Append(packageConfig)
//	view.Append(modelConfig)
//	timeout, err := view.Lookup("timeout") // modelConfig wins
//
// # Command Line Tool
//
// The cfgtools CLI exposes the same functionality:
//
//	cfgtools merge -o effective.yaml defaults.yaml overrides.yaml
//	cfgtools resolve -n analytics.staging.events project.yaml
//	cfgtools mcp
//
// # Error Handling
//
// All failure modes surface as structured errors from the cfgerrors package,
// usable with errors.Is and errors.As. See [github.com/erraggy/cfgtools/cfgerrors].
package cfgtools
