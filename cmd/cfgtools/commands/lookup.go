package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/cfgtools/layered"
)

// LookupFlags contains flags for the lookup command
type LookupFlags struct {
	Key    string
	Format string
	Quiet  bool
}

// SetupLookupFlags creates and configures a FlagSet for the lookup command.
// Returns the FlagSet and a LookupFlags struct with bound flag variables.
func SetupLookupFlags() (*flag.FlagSet, *LookupFlags) {
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	flags := &LookupFlags{}

	fs.StringVar(&flags.Key, "k", "", "top-level key to look up (required)")
	fs.StringVar(&flags.Key, "key", "", "top-level key to look up (required)")
	fs.StringVar(&flags.Format, "f", FormatYAML, "output format (yaml or json)")
	fs.StringVar(&flags.Format, "format", FormatYAML, "output format (yaml or json)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the value, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the value, no diagnostic messages")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: cfgtools lookup [flags] <file1> [file2...]\n\n")
		Writef(fs.Output(), "Look up a top-level key across an ordered list of configuration files.\n")
		Writef(fs.Output(), "Files are scanned from last to first; the first file containing the key\n")
		Writef(fs.Output(), "supplies the value.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  cfgtools lookup -k threads profiles.yaml overrides.yaml\n")
		Writef(fs.Output(), "  cfgtools lookup -k target -f json defaults.yaml local.yaml\n")
		Writef(fs.Output(), "\nExit Status:\n")
		Writef(fs.Output(), "  0    The key was found in at least one file\n")
		Writef(fs.Output(), "  1    No file defines the key\n")
	}

	return fs, flags
}

// HandleLookup executes the lookup command
func HandleLookup(args []string) error {
	fs, flags := SetupLookupFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("lookup command requires at least 1 input file")
	}

	if flags.Key == "" {
		fs.Usage()
		return fmt.Errorf("key is required (use -k or --key)")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	view := layered.New()
	for _, path := range fs.Args() {
		result, err := LoadSource(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", FormatSourcePath(path), err)
		}
		view.Append(result.Tree)
	}

	value, err := view.Lookup(flags.Key)
	if err != nil {
		return err
	}

	data, err := MarshalTree(value, flags.Format)
	if err != nil {
		return fmt.Errorf("marshaling value: %w", err)
	}

	if err := WriteDocument(data, ""); err != nil {
		return err
	}

	if !flags.Quiet {
		Writef(os.Stderr, "✓ Found %q across %d file(s)\n", flags.Key, fs.NArg())
	}

	return nil
}
