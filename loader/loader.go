package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/cfgtools/cfgerrors"
	"github.com/erraggy/cfgtools/transform"
)

// SourceFormat represents the format of a configuration source.
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// Result contains a parsed configuration tree and source metadata.
type Result struct {
	// SourcePath is the input source path the tree was read from.
	// For non-file inputs this is the name supplied by the caller.
	SourcePath string
	// SourceFormat is the detected format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Tree is the parsed configuration tree; the top level is always a mapping
	Tree map[string]any
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// LoadTime is the time taken to read and parse the source
	LoadTime time.Duration
}

// Load reads and parses a configuration file. The format is detected from
// the extension (.json, .yaml, .yml), falling back to a content sniff.
func Load(path string) (*Result, error) {
	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &cfgerrors.ParseError{Path: path, Message: "reading file", Cause: err}
	}

	result, err := parse(path, data, formatFromPath(path))
	if err != nil {
		return nil, err
	}
	result.LoadTime = time.Since(start)
	return result, nil
}

// LoadBytes parses configuration text already held in memory. name is used
// only for error reporting and format detection by extension.
func LoadBytes(name string, data []byte) (*Result, error) {
	start := time.Now()
	result, err := parse(name, data, formatFromPath(name))
	if err != nil {
		return nil, err
	}
	result.LoadTime = time.Since(start)
	return result, nil
}

// LoadReader parses configuration text from a reader. name is used only for
// error reporting and format detection by extension.
func LoadReader(name string, r io.Reader) (*Result, error) {
	start := time.Now()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &cfgerrors.ParseError{Path: name, Message: "reading source", Cause: err}
	}
	result, err := parse(name, data, formatFromPath(name))
	if err != nil {
		return nil, err
	}
	result.LoadTime = time.Since(start)
	return result, nil
}

// ParseVars parses a YAML/JSON fragment that must be a top-level mapping,
// as accepted by --vars style command line flags.
func ParseVars(s string) (map[string]any, error) {
	var tree map[string]any
	if err := yaml.Unmarshal([]byte(s), &tree); err != nil {
		var probe any
		if yaml.Unmarshal([]byte(s), &probe) == nil {
			return nil, &cfgerrors.ParseError{
				Message: fmt.Sprintf("vars must be a YAML dictionary, got %T", probe),
			}
		}
		return nil, &cfgerrors.ParseError{Message: "invalid YAML in vars", Cause: err}
	}
	if tree == nil {
		return nil, &cfgerrors.ParseError{Message: "vars must be a YAML dictionary, got nothing"}
	}
	if err := transform.Check(tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func parse(name string, data []byte, format SourceFormat) (*Result, error) {
	if format == SourceFormatUnknown {
		format = sniffFormat(data)
	}

	var tree map[string]any
	switch format {
	case SourceFormatJSON:
		if err := json.Unmarshal(data, &tree); err != nil {
			var probe any
			if json.Unmarshal(data, &probe) == nil {
				return nil, &cfgerrors.ParseError{
					Path:    name,
					Message: fmt.Sprintf("top level must be a mapping, got %T", probe),
				}
			}
			return nil, &cfgerrors.ParseError{Path: name, Message: "invalid JSON", Cause: err}
		}
	default:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			var probe any
			if yaml.Unmarshal(data, &probe) == nil {
				return nil, &cfgerrors.ParseError{
					Path:    name,
					Message: fmt.Sprintf("top level must be a mapping, got %T", probe),
				}
			}
			return nil, &cfgerrors.ParseError{Path: name, Message: "invalid YAML", Cause: err}
		}
		format = SourceFormatYAML
	}

	if tree == nil {
		// An empty document is an empty configuration.
		tree = map[string]any{}
	}

	// Decoders only emit tree-shaped values, but the check is cheap and
	// keeps the well-formedness guarantee at this boundary.
	if err := transform.Check(tree); err != nil {
		return nil, err
	}

	return &Result{
		SourcePath:   name,
		SourceFormat: format,
		Tree:         tree,
		SourceSize:   int64(len(data)),
	}, nil
}

// formatFromPath maps a file extension to a source format.
func formatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// sniffFormat guesses the format from content: JSON documents open with an
// object or array delimiter.
func sniffFormat(data []byte) SourceFormat {
	trimmed := strings.TrimLeft(string(data), " \t\r\n")
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}
