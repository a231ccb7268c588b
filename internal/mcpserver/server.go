// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes cfgtools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/cfgtools"
)

const serverInstructions = `cfgtools MCP server — merges, resolves, expands, checks, and queries layered configuration trees.

Configuration: All defaults are configurable via CFGTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- CFGTOOLS_MAX_INLINE_SIZE (default: 10485760) — maximum inline document size in bytes
- CFGTOOLS_MAX_MERGE_SOURCES (default: 20) — maximum number of sources per merge call
- CFGTOOLS_OUTPUT_FORMAT (default: yaml) — default document output format (yaml or json)

Documents are plain YAML or JSON mappings. Each tool accepts documents by file path or inline content.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "cfgtools", Version: cfgtools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge",
		Description: "Merge two or more configuration documents into one effective document. Later sources override earlier ones per key: mappings merge recursively, lists from later sources are prepended ahead of earlier items, scalars replace. Fails when the same key holds a mapping in one source and a non-mapping in another. The maximum source count is configurable via CFGTOOLS_MAX_MERGE_SOURCES.",
	}, handleMerge)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve",
		Description: "Resolve the effective configuration for a dotted resource name (e.g. analytics.staging.events) against a hierarchical document. Walks the document from the root along the name, merging each matching level so the most specific level wins per field. A name that matches nothing resolves to the root configuration alone.",
	}, handleResolve)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "expand",
		Description: "Expand ${var} and $var references in every string value of a configuration document using an explicit vars mapping (YAML or JSON). Undefined variables expand to the empty string. The process environment is never consulted; all variables must be provided via vars.",
	}, handleExpand)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check",
		Description: "Check that a configuration document parses and is a well-formed mapping tree. Returns the detected format and top-level keys on success, or the parse failure otherwise.",
	}, handleCheck)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "lookup",
		Description: "Look up a top-level key across an ordered list of configuration documents, scanning from the last-listed (highest priority) document to the first. Returns the first value found, or the union of available keys when no document defines the key.",
	}, handleLookup)
}

// resolveFormat applies the configured default when the caller leaves the
// output format unset.
func resolveFormat(format string) (string, error) {
	if format == "" {
		return cfg.OutputFormat, nil
	}
	if !validFormats[format] {
		return "", fmt.Errorf("invalid format %q; valid values: yaml, json", format)
	}
	return format, nil
}

// marshalTree renders a tree in the requested output format.
func marshalTree(tree any, format string) (string, error) {
	if format == "json" {
		data, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := yaml.Marshal(tree)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
