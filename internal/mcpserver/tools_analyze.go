package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/restshape/analyzer"
	"github.com/erraggy/restshape/model"
	"github.com/erraggy/restshape/render"
	"github.com/erraggy/restshape/typeid"
)

type analyzeTypesInput struct {
	Classes sourceInput `json:"classes"         jsonschema:"Class metadata document"`
	Types   []string    `json:"types"           jsonschema:"Type names to analyze"`
	Docs    bool        `json:"docs,omitempty"  jsonschema:"Include the flat definition table of each type"`
}

type typeResult struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Sample     string `json:"sample"`
	Definition string `json:"definition,omitempty"`
	Schema     string `json:"schema"`
}

type analyzeTypesOutput struct {
	Types       []typeResult `json:"types"`
	Definitions string       `json:"definitions"`
}

func (s *service) handleAnalyzeTypes(_ context.Context, _ *mcp.CallToolRequest, input analyzeTypesInput) (*mcp.CallToolResult, analyzeTypesOutput, error) {
	if len(input.Types) == 0 {
		return errResult(fmt.Errorf("at least one type name is required")), analyzeTypesOutput{}, nil
	}
	table, err := s.table(input.Classes)
	if err != nil {
		return errResult(err), analyzeTypesOutput{}, nil
	}

	store := model.NewStore()
	a := analyzer.NewStatic(store, table, s.cfg.AnalyzerOptions(s.logger)...)
	b, err := s.builder(store)
	if err != nil {
		return errResult(err), analyzeTypesOutput{}, nil
	}

	ids := make([]typeid.Identity, len(input.Types))
	for i, name := range input.Types {
		ids[i] = a.Analyze(name, nil)
	}

	sample := render.NewSample(store)
	definition := render.NewDefinition(store)
	output := analyzeTypesOutput{Types: make([]typeResult, 0, len(ids))}
	for i, id := range ids {
		ref, err := marshalSchema(b.Ref(id))
		if err != nil {
			return errResult(err), analyzeTypesOutput{}, nil
		}
		result := typeResult{
			Name:   input.Types[i],
			Type:   typeid.ToReadable(id.Signature()),
			Sample: sample.RenderIdentity(id),
			Schema: ref,
		}
		if input.Docs {
			result.Definition = definition.RenderIdentity(id)
		}
		output.Types = append(output.Types, result)
	}

	if output.Definitions, err = marshalSchema(b.Definitions()); err != nil {
		return errResult(err), analyzeTypesOutput{}, nil
	}
	return nil, output, nil
}
