// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes restshape capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/restshape"
	"github.com/erraggy/restshape/classmeta"
	"github.com/erraggy/restshape/internal/config"
	"github.com/erraggy/restshape/logging"
	"github.com/erraggy/restshape/model"
	"github.com/erraggy/restshape/schema"
)

const serverInstructions = `restshape MCP server: infers type shapes from JSON samples and class metadata, and renders them as sample payloads and $ref-linked schema definitions.

Configuration: defaults come from the YAML file named by RESTSHAPE_CONFIG and RESTSHAPE_* environment variables set in your MCP client config.

Key settings:
- RESTSHAPE_NAMING (default: simple): definition naming strategy (simple, qualified, fullpath, generic)
- RESTSHAPE_NAME_TEMPLATE: text/template for definition names, e.g. {{.Type}}Dto
- RESTSHAPE_REF_PREFIX (default: #/definitions/): reference prefix
- RESTSHAPE_MAX_SAMPLE_BYTES (default: 1048576): inline content limit
- RESTSHAPE_CACHE_ENABLED (default: true): cache decoded class metadata
- RESTSHAPE_CACHE_TTL (default: 15m): cache entry lifetime`

// service holds the state shared by the tool handlers of one server.
type service struct {
	cfg    *config.Config
	logger logging.Logger
	tables *cacheStore[*classmeta.Table]
}

func newService(c *config.Config, logger logging.Logger) *service {
	if c == nil {
		c = config.Default()
	}
	s := &service{cfg: c, logger: logging.OrNop(logger)}
	if c.Cache.Enabled {
		s.tables = newCacheStore[*classmeta.Table](c.Cache.MaxSize, c.Cache.TTL)
	}
	return s
}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled. A nil config loads settings from the
// environment.
func Run(ctx context.Context, c *config.Config) error {
	if c == nil {
		c = loadConfig()
	}
	logger := logging.NewSlogAdapter(slog.Default())

	server := mcp.NewServer(
		&mcp.Implementation{Name: "restshape", Version: restshape.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	newService(c, logger).registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func (s *service) registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "infer_shape",
		Description: "Infer the shape of a JSON sample payload. Returns a representative sample instance, a flat definition table, and $ref-linked schema definitions. Objects with identical member names and member types share one definition.",
	}, s.handleInferShape)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_types",
		Description: "Analyze declared types against class metadata (YAML or JSON with a top-level classes list). Types may use Java notation (com.example.Model, java.util.List<com.example.Model>) or signatures. Returns a sample and a schema reference per type plus the shared definitions.",
	}, s.handleAnalyzeTypes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "interpret_resources",
		Description: "Resolve the request and response bodies of a resources description. Bodies name a declared type (analyzed against optional class metadata) or carry a sample payload. Returns one summary per body sorted by path and method, plus the shared definitions.",
	}, s.handleInterpretResources)
}

// table decodes class metadata, consulting the cache first.
func (s *service) table(in sourceInput) (*classmeta.Table, error) {
	if in.empty() {
		return classmeta.NewTable(), nil
	}
	data, key, err := in.read(0)
	if err != nil {
		return nil, err
	}
	if s.tables != nil {
		if t, ok := s.tables.get(key); ok {
			return t, nil
		}
	}
	t, err := classmeta.Parse(data)
	if err != nil {
		return nil, err
	}
	if s.tables != nil {
		s.tables.put(key, t)
	}
	return t, nil
}

// builder returns a schema builder over store using the configured naming.
func (s *service) builder(store *model.Store) (*schema.Builder, error) {
	return schema.New(store, s.cfg.SchemaOptions(s.logger)...)
}

// marshalSchema encodes v as compact deterministic JSON.
func marshalSchema(v any) (string, error) {
	data, err := schema.Marshal(v, false)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
