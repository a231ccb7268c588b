package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/cfgtools/cfgerrors"
	"github.com/erraggy/cfgtools/layered"
)

type lookupInput struct {
	Sources []treeInput `json:"sources" jsonschema:"The documents to search\\, in priority order: later sources are searched first"`
	Key     string      `json:"key"     jsonschema:"Top-level key to look up"`
}

type lookupOutput struct {
	Key           string   `json:"key"`
	Found         bool     `json:"found"`
	Value         any      `json:"value,omitempty"`
	SourceCount   int      `json:"source_count"`
	AvailableKeys []string `json:"available_keys,omitempty"`
}

func handleLookup(_ context.Context, _ *mcp.CallToolRequest, input lookupInput) (*mcp.CallToolResult, lookupOutput, error) {
	if input.Key == "" {
		return errResult(fmt.Errorf("key is required")), lookupOutput{}, nil
	}
	if len(input.Sources) == 0 {
		return errResult(fmt.Errorf("at least 1 source is required")), lookupOutput{}, nil
	}

	view := layered.New()
	for i, source := range input.Sources {
		result, err := source.resolve()
		if err != nil {
			return errResult(fmt.Errorf("source %d: %w", i, err)), lookupOutput{}, nil
		}
		view.Append(result.Tree)
	}

	output := lookupOutput{Key: input.Key, SourceCount: len(input.Sources)}

	value, err := view.Lookup(input.Key)
	if err != nil {
		if errors.Is(err, cfgerrors.ErrKeyNotFound) {
			output.AvailableKeys = view.Keys()
			return nil, output, nil
		}
		return errResult(err), lookupOutput{}, nil
	}

	output.Found = true
	output.Value = value
	return nil, output, nil
}
