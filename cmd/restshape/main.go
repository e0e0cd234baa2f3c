package main

import (
	"fmt"
	"os"

	"github.com/erraggy/restshape"
	"github.com/erraggy/restshape/cmd/restshape/commands"
	"github.com/erraggy/restshape/internal/stringutil"
)

// commandNames lists the sub-commands offered as typo suggestions.
var commandNames = []string{"analyze", "sample", "interpret", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("restshape %s\n", restshape.Version())
		if len(os.Args) > 2 && os.Args[2] == "--verbose" {
			fmt.Println(restshape.BuildInfo())
		}
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "analyze":
		err = commands.HandleAnalyze(os.Args[2:])
	case "sample":
		err = commands.HandleSample(os.Args[2:])
	case "interpret":
		err = commands.HandleInterpret(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", s)
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

// suggestCommand returns the command closest to input within two edits.
func suggestCommand(input string) string {
	return stringutil.Closest(input, commandNames, 2)
}

func printUsage() {
	fmt.Print(`restshape - infer the JSON shape of REST request and response bodies

Usage:
  restshape <command> [flags] [args]

Commands:
  analyze     Analyze declared types against class metadata
  sample      Infer the shape of a JSON sample payload
  interpret   Resolve the bodies of a resources description
  mcp         Serve the analysis tools over the Model Context Protocol
  version     Show version information
  help        Show this help message

Run 'restshape <command> --help' for details on a command.
`)
}
