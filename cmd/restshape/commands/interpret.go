package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/erraggy/restshape/classmeta"
	"github.com/erraggy/restshape/resource"
	"github.com/erraggy/restshape/schema"
)

// InterpretFlags contains flags for the interpret command
type InterpretFlags struct {
	CommonFlags
	Classes string
}

// SetupInterpretFlags creates and configures a FlagSet for the interpret command.
// Returns the FlagSet and an InterpretFlags struct with bound flag variables.
func SetupInterpretFlags() (*flag.FlagSet, *InterpretFlags) {
	fs := flag.NewFlagSet("interpret", flag.ContinueOnError)
	flags := &InterpretFlags{}

	flags.register(fs)
	fs.StringVar(&flags.Classes, "classes", "", "class metadata file (YAML or JSON) for declared body types")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: restshape interpret [flags] <resources-file|->\n\n")
		Writef(output, "Resolve the request and response bodies of a resources description.\n")
		Writef(output, "A body either names a declared type or carries a sample payload.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  restshape interpret --classes classes.yaml resources.yaml\n")
		Writef(output, "  restshape interpret --format json resources.json\n")
		Writef(output, "\nResources file:\n")
		Writef(output, "  basePath: /api\n")
		Writef(output, "  methods:\n")
		Writef(output, "    - method: GET\n")
		Writef(output, "      path: users/{id}\n")
		Writef(output, "      responses:\n")
		Writef(output, "        200: {type: com.example.User}\n")
	}

	return fs, flags
}

// InterpretReport is the output of the interpret command.
type InterpretReport struct {
	Bodies      []resource.Summary        `json:"bodies" yaml:"bodies"`
	Definitions map[string]*schema.Schema `json:"definitions" yaml:"definitions"`
}

// HandleInterpret executes the interpret command
func HandleInterpret(args []string) error {
	fs, flags := SetupInterpretFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("interpret command requires exactly one resources file or '-'")
	}
	if err := flags.validate(); err != nil {
		return err
	}

	cfg, logger, err := flags.settings()
	if err != nil {
		return err
	}

	data, err := readInput(fs.Arg(0), 0)
	if err != nil {
		return err
	}
	res, err := resource.Parse(data)
	if err != nil {
		return err
	}
	table := classmeta.NewTable()
	if flags.Classes != "" {
		if table, err = classmeta.LoadFile(flags.Classes); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	i := resource.NewInterpreter(nil, table,
		resource.WithLogger(logger),
		resource.WithAnalyzerOptions(cfg.AnalyzerOptions(logger)...),
	)
	if err := i.Interpret(ctx, res); err != nil {
		return err
	}
	b, err := schema.New(i.Store(), cfg.SchemaOptions(logger)...)
	if err != nil {
		return err
	}

	report := InterpretReport{Bodies: resource.Summarize(res, i.Store(), b)}
	report.Definitions = b.Definitions()

	return writeOutput(flags.Output, func(w io.Writer) error {
		if flags.Format != FormatText {
			return OutputStructured(w, report, flags.Format)
		}
		return writeInterpretText(w, report)
	})
}

func writeInterpretText(w io.Writer, report InterpretReport) error {
	if len(report.Bodies) == 0 {
		Writef(w, "No bodies found.\n")
		return nil
	}
	for i, s := range report.Bodies {
		if i > 0 {
			Writef(w, "\n")
		}
		if s.IsRequest() {
			Writef(w, "%s %s request\n", s.Method, s.Path)
		} else {
			Writef(w, "%s %s %d\n", s.Method, s.Path, s.Status)
		}
		Writef(w, "  Type:   %s\n", s.Type)
		Writef(w, "  Sample: %s\n", s.Sample)
		Writef(w, "  Schema: %s\n", compact(s.Schema))
	}
	return writeDefinitions(w, report.Definitions)
}
