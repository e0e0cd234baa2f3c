package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/erraggy/restshape/analyzer"
	"github.com/erraggy/restshape/model"
	"github.com/erraggy/restshape/render"
	"github.com/erraggy/restshape/schema"
)

// SampleFlags contains flags for the sample command
type SampleFlags struct {
	CommonFlags
}

// SetupSampleFlags creates and configures a FlagSet for the sample command.
// Returns the FlagSet and a SampleFlags struct with bound flag variables.
func SetupSampleFlags() (*flag.FlagSet, *SampleFlags) {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	flags := &SampleFlags{}

	flags.register(fs)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: restshape sample [flags] <file|->\n\n")
		Writef(output, "Infer the shape of a JSON sample payload.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  restshape sample response.json\n")
		Writef(output, "  curl -s https://api.example.com/users/1 | restshape sample -\n")
		Writef(output, "  restshape sample --format yaml -o shape.yaml response.json\n")
		Writef(output, "\nObjects with the same member names and member types share one definition.\n")
		Writef(output, "Numbers are reported as decimals; arrays take the shape of their first element.\n")
	}

	return fs, flags
}

// SampleReport is the output of the sample command.
type SampleReport struct {
	Sample      string                    `json:"sample" yaml:"sample"`
	Definition  string                    `json:"definition" yaml:"definition"`
	Schema      *schema.Schema            `json:"schema" yaml:"schema"`
	Definitions map[string]*schema.Schema `json:"definitions" yaml:"definitions"`
	ShapeCount  int                       `json:"shapeCount" yaml:"shapeCount"`
}

// HandleSample executes the sample command
func HandleSample(args []string) error {
	fs, flags := SetupSampleFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("sample command requires exactly one file path or '-'")
	}
	if err := flags.validate(); err != nil {
		return err
	}

	cfg, logger, err := flags.settings()
	if err != nil {
		return err
	}
	data, err := readInput(fs.Arg(0), cfg.MaxSampleBytes)
	if err != nil {
		return err
	}

	store := model.NewStore()
	id, err := analyzer.NewDynamic(store, cfg.AnalyzerOptions(logger)...).AnalyzeJSON(data)
	if err != nil {
		return err
	}
	b, err := schema.New(store, cfg.SchemaOptions(logger)...)
	if err != nil {
		return err
	}

	report := SampleReport{
		Sample:     render.NewSample(store).RenderIdentity(id),
		Definition: render.NewDefinition(store).RenderIdentity(id),
		Schema:     b.Ref(id),
		ShapeCount: store.Len(),
	}
	report.Definitions = b.Definitions()

	return writeOutput(flags.Output, func(w io.Writer) error {
		if flags.Format != FormatText {
			return OutputStructured(w, report, flags.Format)
		}
		Writef(w, "Input:      %s\n", FormatInputPath(fs.Arg(0)))
		Writef(w, "Shapes:     %d\n", report.ShapeCount)
		Writef(w, "Sample:     %s\n", report.Sample)
		Writef(w, "Definition: %s\n", report.Definition)
		Writef(w, "Schema:     %s\n", compact(report.Schema))
		return writeDefinitions(w, report.Definitions)
	})
}
