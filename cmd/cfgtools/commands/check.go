package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/cfgtools/internal/maputil"
)

// CheckFlags contains flags for the check command
type CheckFlags struct {
	Quiet bool
}

// SetupCheckFlags creates and configures a FlagSet for the check command.
// Returns the FlagSet and a CheckFlags struct with bound flag variables.
func SetupCheckFlags() (*flag.FlagSet, *CheckFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &CheckFlags{}

	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no output, exit status only")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no output, exit status only")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: cfgtools check [flags] <file|->\n\n")
		Writef(fs.Output(), "Check that a configuration file parses and is a well-formed mapping tree.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  cfgtools check project.yaml\n")
		Writef(fs.Output(), "  cat project.yaml | cfgtools check -\n")
		Writef(fs.Output(), "\nExit Status:\n")
		Writef(fs.Output(), "  0    The file is a well-formed configuration document\n")
		Writef(fs.Output(), "  1    The file failed to parse or has a non-mapping top level\n")
	}

	return fs, flags
}

// HandleCheck executes the check command
func HandleCheck(args []string) error {
	fs, flags := SetupCheckFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("check command requires exactly one file path or '-' for stdin")
	}

	sourcePath := fs.Arg(0)

	result, err := LoadSource(sourcePath)
	if err != nil {
		return fmt.Errorf("checking %s: %w", FormatSourcePath(sourcePath), err)
	}

	if !flags.Quiet {
		OutputSourceHeader(sourcePath, result)
		keys := maputil.SortedKeys(result.Tree)
		Writef(os.Stderr, "Top-Level Keys: %d\n", len(keys))
		for _, key := range keys {
			Writef(os.Stderr, "  - %s\n", key)
		}
		Writef(os.Stderr, "✓ Document is well-formed\n")
	}

	return nil
}
