package mcpserver

import (
	"log/slog"
	"os"

	"github.com/erraggy/restshape/internal/config"
)

// loadConfig reads the file named by RESTSHAPE_CONFIG, if any, and the
// RESTSHAPE_* environment variables. Invalid settings log a warning and fall
// back to the defaults.
func loadConfig() *config.Config {
	c, err := config.Load(os.Getenv("RESTSHAPE_CONFIG"))
	if err != nil {
		slog.Warn("invalid configuration, using defaults", "error", err)
		return config.Default()
	}
	return c
}
