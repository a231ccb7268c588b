package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/cfgtools/loader"
	"github.com/erraggy/cfgtools/transform"
)

type expandInput struct {
	Source treeInput `json:"source"           jsonschema:"The document to expand"`
	Vars   string    `json:"vars"             jsonschema:"YAML or JSON mapping of variable names to values"`
	Format string    `json:"format,omitempty" jsonschema:"Output format for the expanded document (yaml or json)"`
}

type expandOutput struct {
	Format   string `json:"format"`
	Document string `json:"document"`
}

func handleExpand(_ context.Context, _ *mcp.CallToolRequest, input expandInput) (*mcp.CallToolResult, expandOutput, error) {
	if input.Vars == "" {
		return errResult(fmt.Errorf("vars is required")), expandOutput{}, nil
	}

	format, err := resolveFormat(input.Format)
	if err != nil {
		return errResult(err), expandOutput{}, nil
	}

	vars, err := loader.ParseVars(input.Vars)
	if err != nil {
		return errResult(err), expandOutput{}, nil
	}

	result, err := input.Source.resolve()
	if err != nil {
		return errResult(err), expandOutput{}, nil
	}

	expanded, err := transform.ExpandEnvWith(result.Tree, func(name string) string {
		if value, ok := vars[name]; ok && value != nil {
			return fmt.Sprint(value)
		}
		return ""
	})
	if err != nil {
		return errResult(err), expandOutput{}, nil
	}

	document, err := marshalTree(expanded, format)
	if err != nil {
		return errResult(err), expandOutput{}, nil
	}

	return nil, expandOutput{
		Format:   format,
		Document: document,
	}, nil
}
