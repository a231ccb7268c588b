package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/cfgtools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: cfgtools mcp\n\n")
		Writef(fs.Output(), "Run an MCP (Model Context Protocol) server over stdio, exposing cfgtools\n")
		Writef(fs.Output(), "capabilities (merge, resolve, expand, check, lookup) as MCP tools.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nConfiguration:\n")
		Writef(fs.Output(), "  Server defaults are read from CFGTOOLS_* environment variables:\n")
		Writef(fs.Output(), "  - CFGTOOLS_MAX_INLINE_SIZE      maximum inline document size in bytes\n")
		Writef(fs.Output(), "  - CFGTOOLS_MAX_MERGE_SOURCES    maximum number of sources per merge call\n")
		Writef(fs.Output(), "  - CFGTOOLS_OUTPUT_FORMAT        default document output format (yaml or json)\n")
		Writef(fs.Output(), "\nExample MCP client config:\n")
		Writef(fs.Output(), "  {\"command\": \"cfgtools\", \"args\": [\"mcp\"]}\n")
	}

	return fs
}

// HandleMCP executes the mcp command. It blocks until the client disconnects
// or the process receives an interrupt or termination signal.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
