package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
)

// ExpandFlags contains flags for the expand command
type ExpandFlags struct {
	Vars   string
	NoEnv  bool
	Output string
	Format string
	Quiet  bool
}

// SetupExpandFlags creates and configures a FlagSet for the expand command.
// Returns the FlagSet and an ExpandFlags struct with bound flag variables.
func SetupExpandFlags() (*flag.FlagSet, *ExpandFlags) {
	fs := flag.NewFlagSet("expand", flag.ContinueOnError)
	flags := &ExpandFlags{}

	fs.StringVar(&flags.Vars, "vars", "", "inline YAML/JSON mapping of variables to expand")
	fs.BoolVar(&flags.NoEnv, "no-env", false, "don't consult the process environment for undefined variables")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "f", FormatYAML, "output format (yaml or json)")
	fs.StringVar(&flags.Format, "format", FormatYAML, "output format (yaml or json)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: cfgtools expand [flags] <file|->\n\n")
		Writef(fs.Output(), "Expand ${var} and $var references in every string value of a\n")
		Writef(fs.Output(), "configuration file.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  cfgtools expand profiles.yaml\n")
		Writef(fs.Output(), "  cfgtools expand --vars '{env: prod, threads: 8}' profiles.yaml\n")
		Writef(fs.Output(), "  cfgtools expand --no-env --vars '{env: ci}' -o expanded.yaml profiles.yaml\n")
		Writef(fs.Output(), "  cat profiles.yaml | cfgtools expand -q - > expanded.yaml\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - Inline --vars entries take precedence over environment variables\n")
		Writef(fs.Output(), "  - Undefined variables expand to the empty string\n")
		Writef(fs.Output(), "  - Non-string values pass through unchanged\n")
	}

	return fs, flags
}

// HandleExpand executes the expand command
func HandleExpand(args []string) error {
	fs, flags := SetupExpandFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expand command requires exactly one file path or '-' for stdin")
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

	expanded, err := expandTree(result.Tree, flags.Vars, !flags.NoEnv)
	if err != nil {
		return err
	}
	totalTime := time.Since(startTime)

	data, err := MarshalTree(expanded, flags.Format)
	if err != nil {
		return fmt.Errorf("marshaling expanded document: %w", err)
	}

	if err := WriteDocument(data, flags.Output); err != nil {
		return err
	}

	if !flags.Quiet {
		OutputSourceHeader(sourcePath, result)
		Writef(os.Stderr, "Total Time: %v\n", totalTime)
		if flags.Output != "" {
			Writef(os.Stderr, "Output: %s\n", flags.Output)
		}
		Writef(os.Stderr, "✓ Expansion completed successfully!\n")
	}

	return nil
}
