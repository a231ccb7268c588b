package main

import (
	"fmt"
	"os"

	"github.com/erraggy/cfgtools"
	"github.com/erraggy/cfgtools/cmd/cfgtools/commands"
)

// knownCommands lists every command name for typo suggestions.
var knownCommands = []string{
	"merge", "resolve", "expand", "check", "lookup", "mcp", "version", "help",
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("cfgtools v%s\n", cfgtools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "merge":
		err = commands.HandleMerge(args)
	case "resolve":
		err = commands.HandleResolve(args)
	case "expand":
		err = commands.HandleExpand(args)
	case "check":
		err = commands.HandleCheck(args)
	case "lookup":
		err = commands.HandleLookup(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when no
// command is within edit distance 2.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`cfgtools - Layered Configuration Tools

Usage:
  cfgtools <command> [options]

Commands:
  merge       Merge multiple configuration files into one document
  resolve     Resolve the effective configuration for a resource name
  expand      Expand ${var} references in a configuration file
  check       Check that a configuration file is well-formed
  lookup      Look up a key across an ordered list of configuration files
  mcp         Run an MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  cfgtools merge -o effective.yaml base.yaml override.yaml
  cfgtools resolve -n analytics.staging models.yaml
  cfgtools expand --vars '{env: prod}' profiles.yaml
  cfgtools check project.yaml
  cfgtools lookup -k threads profiles.yaml overrides.yaml

Run 'cfgtools <command> --help' for more information on a command.`)
}
