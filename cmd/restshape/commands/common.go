// Package commands provides CLI command handlers for restshape.
package commands

import (
	"bytes"
	"cmp"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/restshape/internal/cliutil"
	"github.com/erraggy/restshape/internal/config"
	"github.com/erraggy/restshape/logging"
	"github.com/erraggy/restshape/schema"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// stdin and stdout are swapped by tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// FormatInputPath returns a display-friendly path.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatInputPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// CommonFlags are shared by the analysis commands.
type CommonFlags struct {
	Config  string
	Format  string
	Output  string
	Naming  string
	Verbose bool
}

func (f *CommonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "configuration file (YAML); defaults to $RESTSHAPE_CONFIG")
	fs.StringVar(&f.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&f.Output, "o", "", "write output to file instead of stdout")
	fs.StringVar(&f.Output, "output", "", "write output to file instead of stdout")
	fs.StringVar(&f.Naming, "naming", "", "definition naming strategy: simple, qualified, fullpath, or generic")
	fs.BoolVar(&f.Verbose, "v", false, "log analysis decisions to stderr")
	fs.BoolVar(&f.Verbose, "verbose", false, "log analysis decisions to stderr")
}

func (f *CommonFlags) validate() error {
	if err := ValidateOutputFormat(f.Format); err != nil {
		return err
	}
	if f.Naming != "" {
		if _, ok := schema.ParseNamingStrategy(f.Naming); !ok {
			return fmt.Errorf("invalid naming '%s'. Valid strategies: simple, qualified, fullpath, generic", f.Naming)
		}
	}
	return nil
}

// settings loads the configuration named by --config or $RESTSHAPE_CONFIG,
// applies flag overrides, and builds the logger.
func (f *CommonFlags) settings() (*config.Config, logging.Logger, error) {
	cfg, err := config.Load(cmp.Or(f.Config, os.Getenv("RESTSHAPE_CONFIG")))
	if err != nil {
		return nil, nil, err
	}
	if f.Naming != "" {
		cfg.Naming = f.Naming
	}
	return cfg, newLogger(cfg, f.Verbose), nil
}

// newLogger returns a text logger on stderr at the configured level, or at
// debug level when verbose is set.
func newLogger(cfg *config.Config, verbose bool) logging.Logger {
	level := cfg.Level()
	if verbose {
		level = slog.LevelDebug
	}
	return logging.NewText(stderr, level)
}

// readInput reads path, or stdin for StdinFilePath. A positive limit bounds
// the number of bytes accepted.
func readInput(path string, limit int) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == StdinFilePath {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(filepath.Clean(path))
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", FormatInputPath(path), err)
	}
	if limit > 0 && len(data) > limit {
		return nil, fmt.Errorf("%s is %d bytes, exceeding the %d byte limit", FormatInputPath(path), len(data), limit)
	}
	return data, nil
}

// writeOutput runs render against stdout, or against a buffer flushed to
// path with owner-only permissions.
func writeOutput(path string, render func(w io.Writer) error) error {
	if path == "" {
		return render(stdout)
	}
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	cleaned, err := cliutil.WriteFile(path, buf.Bytes())
	if err != nil {
		return err
	}
	Writef(stderr, "Output written to: %s\n", cleaned)
	return nil
}

// OutputStructured writes data in the specified format (json or yaml) to w.
// JSON output is indented with object members in sorted order.
func OutputStructured(w io.Writer, data any, format string) error {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = schema.Marshal(data, true)
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	out = bytes.TrimRight(out, "\n")
	Writef(w, "%s\n", out)
	return nil
}

// writeDefinitions prints the definitions map as indented JSON under a
// heading, or nothing when it is empty.
func writeDefinitions(w io.Writer, defs map[string]*schema.Schema) error {
	if len(defs) == 0 {
		return nil
	}
	out, err := schema.Marshal(defs, true)
	if err != nil {
		return err
	}
	Writef(w, "\nDefinitions:\n%s\n", bytes.TrimRight(out, "\n"))
	return nil
}

// compact encodes a schema reference on one line for text output.
func compact(s *schema.Schema) string {
	out, err := schema.Marshal(s, false)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return string(out)
}
