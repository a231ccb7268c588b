package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/cfgtools/hierarchy"
	"github.com/erraggy/cfgtools/loader"
	"github.com/erraggy/cfgtools/transform"
)

// ResolveFlags contains flags for the resolve command
type ResolveFlags struct {
	Name      string
	Vars      string
	ExpandEnv bool
	Output    string
	Format    string
	Quiet     bool
}

// SetupResolveFlags creates and configures a FlagSet for the resolve command.
// Returns the FlagSet and a ResolveFlags struct with bound flag variables.
func SetupResolveFlags() (*flag.FlagSet, *ResolveFlags) {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	flags := &ResolveFlags{}

	fs.StringVar(&flags.Name, "n", "", "dotted resource name to resolve, e.g. analytics.staging.events (required)")
	fs.StringVar(&flags.Name, "name", "", "dotted resource name to resolve, e.g. analytics.staging.events (required)")
	fs.StringVar(&flags.Vars, "vars", "", "inline YAML/JSON mapping of variables to expand in string values")
	fs.BoolVar(&flags.ExpandEnv, "expand-env", false, "expand ${var} references from the process environment")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "f", FormatYAML, "output format (yaml or json)")
	fs.StringVar(&flags.Format, "format", FormatYAML, "output format (yaml or json)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: cfgtools resolve [flags] <file|->\n\n")
		Writef(fs.Output(), "Resolve the effective configuration for a resource name against a\n")
		Writef(fs.Output(), "hierarchical configuration file.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nResolution:\n")
		Writef(fs.Output(), "  The file is walked from its root along the dotted name, and every\n")
		Writef(fs.Output(), "  matching level is merged into one document. The most specific level\n")
		Writef(fs.Output(), "  wins per field; list items from deeper levels come first. A name that\n")
		Writef(fs.Output(), "  matches nothing resolves to the root configuration alone.\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  cfgtools resolve -n analytics.staging models.yaml\n")
		Writef(fs.Output(), "  cfgtools resolve -n analytics --vars '{env: prod}' models.yaml\n")
		Writef(fs.Output(), "  cfgtools resolve -n analytics --expand-env -f json models.yaml\n")
		Writef(fs.Output(), "  cat models.yaml | cfgtools resolve -q -n analytics - > effective.yaml\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - --vars and --expand-env both expand ${var} in string values;\n")
		Writef(fs.Output(), "    --vars entries take precedence over environment variables\n")
		Writef(fs.Output(), "  - Undefined variables expand to the empty string\n")
	}

	return fs, flags
}

// HandleResolve executes the resolve command
func HandleResolve(args []string) error {
	fs, flags := SetupResolveFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("resolve command requires exactly one file path or '-' for stdin")
	}

	if flags.Name == "" {
		fs.Usage()
		return fmt.Errorf("resource name is required (use -n or --name)")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	sourcePath := fs.Arg(0)

	startTime := time.Now()
	result, err := LoadSource(sourcePath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", FormatSourcePath(sourcePath), err)
	}

	tree := result.Tree
	if flags.Vars != "" || flags.ExpandEnv {
		expanded, err := expandTree(tree, flags.Vars, flags.ExpandEnv)
		if err != nil {
			return err
		}
		tree = expanded
	}

	fqn := hierarchy.ParseFQN(flags.Name)
	resolved, err := hierarchy.Resolve(tree, fqn)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", flags.Name, err)
	}
	totalTime := time.Since(startTime)

	data, err := MarshalTree(resolved, flags.Format)
	if err != nil {
		return fmt.Errorf("marshaling resolved document: %w", err)
	}

	if err := WriteDocument(data, flags.Output); err != nil {
		return err
	}

	if !flags.Quiet {
		OutputSourceHeader(sourcePath, result)
		Writef(os.Stderr, "Resource: %s\n", flags.Name)
		Writef(os.Stderr, "Total Time: %v\n", totalTime)
		if flags.Output != "" {
			Writef(os.Stderr, "Output: %s\n", flags.Output)
		}
		Writef(os.Stderr, "✓ Resolution completed successfully!\n")
	}

	return nil
}

// expandTree expands ${var} references in every string value of tree. Inline
// vars win over the process environment; the environment is consulted only
// when useEnv is set.
func expandTree(tree map[string]any, inlineVars string, useEnv bool) (map[string]any, error) {
	var vars map[string]any
	if inlineVars != "" {
		parsed, err := loader.ParseVars(inlineVars)
		if err != nil {
			return nil, err
		}
		vars = parsed
	}

	lookup := func(name string) string {
		if value, ok := vars[name]; ok && value != nil {
			return fmt.Sprint(value)
		}
		if useEnv {
			return os.Getenv(name)
		}
		return ""
	}

	expanded, err := transform.ExpandEnvWith(tree, lookup)
	if err != nil {
		return nil, fmt.Errorf("expanding variables: %w", err)
	}
	out, _ := expanded.(map[string]any)
	return out, nil
}
