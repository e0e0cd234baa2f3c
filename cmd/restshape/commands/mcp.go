package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/restshape/internal/config"
	"github.com/erraggy/restshape/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	configPath := fs.String("config", "", "configuration file (YAML); defaults to $RESTSHAPE_CONFIG")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: restshape mcp [flags]\n\n")
		Writef(output, "Serve the infer_shape, analyze_types and interpret_resources tools\n")
		Writef(output, "over the Model Context Protocol on stdin/stdout.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nSettings are also read from RESTSHAPE_* environment variables.\n")
	}

	return fs, configPath
}

// HandleMCP executes the mcp command and blocks until the client disconnects
// or the process is interrupted.
func HandleMCP(args []string) error {
	fs, configPath := SetupMCPFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	var cfg *config.Config
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx, cfg)
}
