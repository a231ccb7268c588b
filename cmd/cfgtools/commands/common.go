// Package commands provides CLI command handlers for cfgtools.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/cfgtools"
	"github.com/erraggy/cfgtools/loader"
)

// Output format constants
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatYAML, FormatJSON)
	}
	return nil
}

// MarshalTree marshals a configuration tree to bytes in the specified format.
func MarshalTree(tree any, format string) ([]byte, error) {
	if format == FormatJSON {
		data, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return yaml.Marshal(tree)
}

// LoadSource loads a configuration document from a file path, or from stdin
// when path is StdinFilePath.
func LoadSource(path string) (*loader.Result, error) {
	if path == StdinFilePath {
		return loader.LoadReader("<stdin>", os.Stdin)
	}
	return loader.Load(path)
}

// FormatSourcePath returns a display-friendly path for the source.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSourcePath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	// Check if output file would overwrite any input files
	for _, inputPath := range inputPaths {
		if inputPath == StdinFilePath {
			continue
		}
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}

		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	// Check if output file already exists and warn (but don't error)
	if _, err := os.Stat(outputPath); err == nil {
		Writef(os.Stderr, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}

	return nil
}

// WriteDocument writes marshaled document bytes to the output file, or to
// stdout when outputPath is empty. Files are written with restrictive
// permissions (0600).
func WriteDocument(data []byte, outputPath string) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		return nil
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return fmt.Errorf("writing document to stdout: %w", err)
	}
	return nil
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// OutputSourceHeader outputs the common source header to stderr.
// This includes cfgtools version, source path, detected format, and size.
func OutputSourceHeader(path string, result *loader.Result) {
	Writef(os.Stderr, "cfgtools version: %s\n", cfgtools.Version())
	Writef(os.Stderr, "Source: %s\n", FormatSourcePath(path))
	Writef(os.Stderr, "Source Format: %s\n", result.SourceFormat)
	Writef(os.Stderr, "Source Size: %s\n", loader.FormatBytes(result.SourceSize))
	Writef(os.Stderr, "Load Time: %v\n", result.LoadTime)
}
