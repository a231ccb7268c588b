package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/cfgtools/hierarchy"
)

type resolveInput struct {
	Source treeInput `json:"source"           jsonschema:"The hierarchical document to resolve against"`
	Name   string    `json:"name"             jsonschema:"Dotted resource name\\, e.g. analytics.staging.events"`
	Format string    `json:"format,omitempty" jsonschema:"Output format for the resolved document (yaml or json)"`
}

type resolveOutput struct {
	Name       string `json:"name"`
	LevelCount int    `json:"level_count"`
	Format     string `json:"format"`
	Document   string `json:"document"`
}

func handleResolve(_ context.Context, _ *mcp.CallToolRequest, input resolveInput) (*mcp.CallToolResult, resolveOutput, error) {
	if input.Name == "" {
		return errResult(fmt.Errorf("name is required")), resolveOutput{}, nil
	}

	format, err := resolveFormat(input.Format)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	result, err := input.Source.resolve()
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	fqn := hierarchy.ParseFQN(input.Name)
	levelCount := len(hierarchy.Search(result.Tree, fqn).Collect())

	resolved, err := hierarchy.Resolve(result.Tree, fqn)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	document, err := marshalTree(resolved, format)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	return nil, resolveOutput{
		Name:       input.Name,
		LevelCount: levelCount,
		Format:     format,
		Document:   document,
	}, nil
}
