package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/restshape/resource"
)

type interpretResourcesInput struct {
	Resources sourceInput `json:"resources"         jsonschema:"Resources description listing methods and bodies"`
	Classes   sourceInput `json:"classes,omitempty" jsonschema:"Optional class metadata for declared body types"`
}

type bodyResult struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Status int    `json:"status,omitempty"`
	Type   string `json:"type"`
	Sample string `json:"sample"`
	Schema string `json:"schema"`
}

type interpretResourcesOutput struct {
	Bodies      []bodyResult `json:"bodies"`
	Definitions string       `json:"definitions"`
}

func (s *service) handleInterpretResources(ctx context.Context, _ *mcp.CallToolRequest, input interpretResourcesInput) (*mcp.CallToolResult, interpretResourcesOutput, error) {
	data, _, err := input.Resources.read(s.cfg.MaxSampleBytes)
	if err != nil {
		return errResult(err), interpretResourcesOutput{}, nil
	}
	res, err := resource.Parse(data)
	if err != nil {
		return errResult(err), interpretResourcesOutput{}, nil
	}
	table, err := s.table(input.Classes)
	if err != nil {
		return errResult(err), interpretResourcesOutput{}, nil
	}

	i := resource.NewInterpreter(nil, table,
		resource.WithLogger(s.logger),
		resource.WithAnalyzerOptions(s.cfg.AnalyzerOptions(s.logger)...),
	)
	if err := i.Interpret(ctx, res); err != nil {
		return errResult(err), interpretResourcesOutput{}, nil
	}

	b, err := s.builder(i.Store())
	if err != nil {
		return errResult(err), interpretResourcesOutput{}, nil
	}
	summaries := resource.Summarize(res, i.Store(), b)

	output := interpretResourcesOutput{Bodies: make([]bodyResult, 0, len(summaries))}
	for _, sum := range summaries {
		ref, err := marshalSchema(sum.Schema)
		if err != nil {
			return errResult(err), interpretResourcesOutput{}, nil
		}
		output.Bodies = append(output.Bodies, bodyResult{
			Method: sum.Method,
			Path:   sum.Path,
			Status: sum.Status,
			Type:   sum.Type,
			Sample: sum.Sample,
			Schema: ref,
		})
	}
	if output.Definitions, err = marshalSchema(b.Definitions()); err != nil {
		return errResult(err), interpretResourcesOutput{}, nil
	}
	return nil, output, nil
}
