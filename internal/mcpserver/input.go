package mcpserver

import (
	"fmt"

	"github.com/erraggy/cfgtools/loader"
)

// treeInput represents the two ways a configuration document can be provided
// to a tool. Exactly one of File or Content must be set.
type treeInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a YAML or JSON configuration file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline configuration document content (YAML or JSON)"`
}

// resolve parses the document from whichever input was provided.
func (in treeInput) resolve() (*loader.Result, error) {
	count := 0
	if in.File != "" {
		count++
	}
	if in.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file or content must be provided (got %d)", count)
	}

	if in.Content != "" {
		if int64(len(in.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set CFGTOOLS_MAX_INLINE_SIZE to increase",
				len(in.Content), cfg.MaxInlineSize)
		}
		return loader.LoadBytes("inline", []byte(in.Content))
	}
	return loader.Load(in.File)
}
