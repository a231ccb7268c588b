package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/cfgtools/merge"
)

type mergeInput struct {
	Sources []treeInput `json:"sources"          jsonschema:"The documents to merge\\, in priority order: later sources override earlier ones"`
	Format  string      `json:"format,omitempty" jsonschema:"Output format for the merged document (yaml or json)"`
}

type mergeOutput struct {
	SourceCount int    `json:"source_count"`
	Format      string `json:"format"`
	Document    string `json:"document"`
}

func handleMerge(_ context.Context, _ *mcp.CallToolRequest, input mergeInput) (*mcp.CallToolResult, mergeOutput, error) {
	if len(input.Sources) < 2 {
		return errResult(fmt.Errorf("at least 2 sources are required (got %d)", len(input.Sources))), mergeOutput{}, nil
	}
	if len(input.Sources) > cfg.MaxMergeSources {
		return errResult(fmt.Errorf("too many sources: %d exceeds maximum %d; set CFGTOOLS_MAX_MERGE_SOURCES to increase",
			len(input.Sources), cfg.MaxMergeSources)), mergeOutput{}, nil
	}

	format, err := resolveFormat(input.Format)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	trees := make([]map[string]any, 0, len(input.Sources))
	for i, source := range input.Sources {
		result, err := source.resolve()
		if err != nil {
			return errResult(fmt.Errorf("source %d: %w", i, err)), mergeOutput{}, nil
		}
		trees = append(trees, result.Tree)
	}

	merged, err := merge.MergeMaps(trees...)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	document, err := marshalTree(merged, format)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	return nil, mergeOutput{
		SourceCount: len(trees),
		Format:      format,
		Document:    document,
	}, nil
}
