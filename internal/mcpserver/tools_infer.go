package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/restshape/analyzer"
	"github.com/erraggy/restshape/model"
	"github.com/erraggy/restshape/render"
)

type inferShapeInput struct {
	Sample sourceInput `json:"sample" jsonschema:"The JSON sample payload to analyze"`
}

type inferShapeOutput struct {
	Sample      string `json:"sample"`
	Definition  string `json:"definition"`
	Schema      string `json:"schema"`
	Definitions string `json:"definitions"`
	ShapeCount  int    `json:"shape_count"`
}

func (s *service) handleInferShape(_ context.Context, _ *mcp.CallToolRequest, input inferShapeInput) (*mcp.CallToolResult, inferShapeOutput, error) {
	data, _, err := input.Sample.read(s.cfg.MaxSampleBytes)
	if err != nil {
		return errResult(err), inferShapeOutput{}, nil
	}

	store := model.NewStore()
	d := analyzer.NewDynamic(store, s.cfg.AnalyzerOptions(s.logger)...)
	id, err := d.AnalyzeJSON(data)
	if err != nil {
		return errResult(err), inferShapeOutput{}, nil
	}

	b, err := s.builder(store)
	if err != nil {
		return errResult(err), inferShapeOutput{}, nil
	}
	root, err := marshalSchema(b.Ref(id))
	if err != nil {
		return errResult(err), inferShapeOutput{}, nil
	}
	defs, err := marshalSchema(b.Definitions())
	if err != nil {
		return errResult(err), inferShapeOutput{}, nil
	}

	return nil, inferShapeOutput{
		Sample:      render.NewSample(store).RenderIdentity(id),
		Definition:  render.NewDefinition(store).RenderIdentity(id),
		Schema:      root,
		Definitions: defs,
		ShapeCount:  store.Len(),
	}, nil
}
