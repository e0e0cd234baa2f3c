package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/restshape/analyzer"
	"github.com/erraggy/restshape/classmeta"
	"github.com/erraggy/restshape/model"
	"github.com/erraggy/restshape/render"
	"github.com/erraggy/restshape/schema"
	"github.com/erraggy/restshape/shapeerrors"
	"github.com/erraggy/restshape/typeid"
)

// AnalyzeFlags contains flags for the analyze command
type AnalyzeFlags struct {
	CommonFlags
	Classes    string
	Docs       string
	Definition bool
}

// SetupAnalyzeFlags creates and configures a FlagSet for the analyze command.
// Returns the FlagSet and an AnalyzeFlags struct with bound flag variables.
func SetupAnalyzeFlags() (*flag.FlagSet, *AnalyzeFlags) {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	flags := &AnalyzeFlags{}

	flags.register(fs)
	fs.StringVar(&flags.Classes, "classes", "", "class metadata file (YAML or JSON); '-' reads stdin")
	fs.StringVar(&flags.Docs, "docs", "", "YAML or JSON map of property name to description")
	fs.BoolVar(&flags.Definition, "definition", false, "include the flat definition table of each type")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: restshape analyze [flags] <type>...\n\n")
		Writef(output, "Analyze declared types against class metadata and print a sample\n")
		Writef(output, "payload and a schema reference for each, plus the shared definitions.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  restshape analyze --classes classes.yaml com.example.Model\n")
		Writef(output, "  restshape analyze --classes classes.yaml 'java.util.List<com.example.Model>'\n")
		Writef(output, "  restshape analyze --classes classes.yaml --naming qualified --format json com.example.Order\n")
		Writef(output, "\nTypes may be written in Java notation or as signatures (Lcom/example/Model;).\n")
		Writef(output, "Types absent from the metadata are reported as opaque objects.\n")
	}

	return fs, flags
}

// TypeReport is the analysis result of one type.
type TypeReport struct {
	Name       string         `json:"name" yaml:"name"`
	Type       string         `json:"type" yaml:"type"`
	Sample     string         `json:"sample" yaml:"sample"`
	Definition string         `json:"definition,omitempty" yaml:"definition,omitempty"`
	Schema     *schema.Schema `json:"schema" yaml:"schema"`
}

// AnalyzeReport is the output of the analyze command.
type AnalyzeReport struct {
	Types       []TypeReport              `json:"types" yaml:"types"`
	Definitions map[string]*schema.Schema `json:"definitions" yaml:"definitions"`
}

// HandleAnalyze executes the analyze command
func HandleAnalyze(args []string) error {
	fs, flags := SetupAnalyzeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("analyze command requires at least one type name")
	}
	if err := flags.validate(); err != nil {
		return err
	}

	cfg, logger, err := flags.settings()
	if err != nil {
		return err
	}

	table := classmeta.NewTable()
	if flags.Classes != "" {
		data, err := readInput(flags.Classes, 0)
		if err != nil {
			return err
		}
		if table, err = classmeta.Parse(data); err != nil {
			return err
		}
	}
	docs, err := loadDocs(flags.Docs)
	if err != nil {
		return err
	}

	store := model.NewStore()
	a := analyzer.NewStatic(store, table, cfg.AnalyzerOptions(logger)...)
	b, err := schema.New(store, cfg.SchemaOptions(logger)...)
	if err != nil {
		return err
	}

	ids := make([]typeid.Identity, fs.NArg())
	for i, name := range fs.Args() {
		ids[i] = a.Analyze(name, docs)
	}

	sample := render.NewSample(store)
	definition := render.NewDefinition(store)
	report := AnalyzeReport{Types: make([]TypeReport, 0, len(ids))}
	for i, id := range ids {
		tr := TypeReport{
			Name:   fs.Arg(i),
			Type:   typeid.ToReadable(id.Signature()),
			Sample: sample.RenderIdentity(id),
			Schema: b.Ref(id),
		}
		if flags.Definition {
			tr.Definition = definition.RenderIdentity(id)
		}
		report.Types = append(report.Types, tr)
	}
	report.Definitions = b.Definitions()

	return writeOutput(flags.Output, func(w io.Writer) error {
		if flags.Format != FormatText {
			return OutputStructured(w, report, flags.Format)
		}
		return writeAnalyzeText(w, report)
	})
}

func writeAnalyzeText(w io.Writer, report AnalyzeReport) error {
	for i, tr := range report.Types {
		if i > 0 {
			Writef(w, "\n")
		}
		Writef(w, "Type: %s\n", tr.Type)
		Writef(w, "  Sample:     %s\n", tr.Sample)
		if tr.Definition != "" {
			Writef(w, "  Definition: %s\n", tr.Definition)
		}
		Writef(w, "  Schema:     %s\n", compact(tr.Schema))
	}
	return writeDefinitions(w, report.Definitions)
}

// loadDocs reads a property description map. An empty path yields nil.
func loadDocs(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, &shapeerrors.ParseError{Path: path, Message: "reading descriptions", Cause: err}
	}
	var docs map[string]string
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, &shapeerrors.ParseError{Path: path, Message: "decoding descriptions", Cause: err}
	}
	return docs, nil
}
