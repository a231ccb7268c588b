package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/cfgtools"
	"github.com/erraggy/cfgtools/merge"
)

// MergeFlags contains flags for the merge command
type MergeFlags struct {
	Output string
	Format string
	Quiet  bool
}

// SetupMergeFlags creates and configures a FlagSet for the merge command.
// Returns the FlagSet and a MergeFlags struct with bound flag variables.
func SetupMergeFlags() (*flag.FlagSet, *MergeFlags) {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	flags := &MergeFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "f", FormatYAML, "output format (yaml or json)")
	fs.StringVar(&flags.Format, "format", FormatYAML, "output format (yaml or json)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: cfgtools merge [flags] <file1> <file2> [file3...]\n\n")
		Writef(fs.Output(), "Merge multiple configuration files into a single effective document.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nOverride Rules:\n")
		Writef(fs.Output(), "  - Later files override earlier files, per key\n")
		Writef(fs.Output(), "  - Mappings merge recursively; keys unique to either side are kept\n")
		Writef(fs.Output(), "  - Lists from later files are prepended ahead of earlier items\n")
		Writef(fs.Output(), "  - Scalars from later files replace earlier values\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  cfgtools merge base.yaml override.yaml\n")
		Writef(fs.Output(), "  cfgtools merge -o effective.yaml defaults.yaml project.yaml local.yaml\n")
		Writef(fs.Output(), "  cfgtools merge -f json base.yaml override.json\n")
		Writef(fs.Output(), "  cat override.yaml | cfgtools merge -q base.yaml - > effective.yaml\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - Use '-' as a file path to read one input from stdin\n")
		Writef(fs.Output(), "  - Merging fails when the same key holds a mapping in one file and a\n")
		Writef(fs.Output(), "    non-mapping in another\n")
		Writef(fs.Output(), "  - Output file is written with restrictive permissions (0600) for security\n")
	}

	return fs, flags
}

// HandleMerge executes the merge command
func HandleMerge(args []string) error {
	fs, flags := SetupMergeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("merge command requires at least 2 input files")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	filePaths := fs.Args()
	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, filePaths); err != nil {
			return err
		}
	}

	startTime := time.Now()
	trees := make([]map[string]any, 0, len(filePaths))
	for _, path := range filePaths {
		result, err := LoadSource(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", FormatSourcePath(path), err)
		}
		trees = append(trees, result.Tree)
	}

	merged, err := merge.MergeMaps(trees...)
	if err != nil {
		return fmt.Errorf("merging configurations: %w", err)
	}
	totalTime := time.Since(startTime)

	data, err := MarshalTree(merged, flags.Format)
	if err != nil {
		return fmt.Errorf("marshaling merged document: %w", err)
	}

	if err := WriteDocument(data, flags.Output); err != nil {
		return err
	}

	if !flags.Quiet {
		Writef(os.Stderr, "cfgtools version: %s\n", cfgtools.Version())
		Writef(os.Stderr, "Successfully merged %d configuration files\n", len(filePaths))
		if flags.Output != "" {
			Writef(os.Stderr, "Output: %s\n", flags.Output)
		}
		Writef(os.Stderr, "Total Time: %v\n", totalTime)
		Writef(os.Stderr, "✓ Merge completed successfully!\n")
	}

	return nil
}
