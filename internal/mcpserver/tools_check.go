package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/cfgtools/internal/maputil"
)

type checkInput struct {
	Source treeInput `json:"source" jsonschema:"The document to check"`
}

type checkOutput struct {
	Valid        bool     `json:"valid"`
	SourceFormat string   `json:"source_format,omitempty"`
	TopLevelKeys []string `json:"top_level_keys,omitempty"`
	Error        string   `json:"error,omitempty"`
}

func handleCheck(_ context.Context, _ *mcp.CallToolRequest, input checkInput) (*mcp.CallToolResult, checkOutput, error) {
	result, err := input.Source.resolve()
	if err != nil {
		// A malformed document is the expected answer here, not a tool failure.
		return nil, checkOutput{Valid: false, Error: sanitizeError(err)}, nil
	}

	return nil, checkOutput{
		Valid:        true,
		SourceFormat: string(result.SourceFormat),
		TopLevelKeys: maputil.SortedKeys(result.Tree),
	}, nil
}
