package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matiasleandrokruk/searxng-mcp/internal/infra/searxng"
)

const (
	BuiltinSearch              = "search"
	BuiltinGetAvailableEngines = "get_available_engines"
)

// SearchInput is the argument object of the search tool.
type SearchInput struct {
	Query      string `json:"query" jsonschema:"The search query"`
	Categories string `json:"categories,omitempty" jsonschema:"Optional comma-separated list of categories"`
	Engines    string `json:"engines,omitempty" jsonschema:"Optional comma-separated list of engines"`
	Language   string `json:"language,omitempty" jsonschema:"Optional language code"`
	Page       int    `json:"page,omitempty" jsonschema:"Page number (default: 1)"`
	TimeRange  string `json:"time_range,omitempty" jsonschema:"Optional time range (day, month, year)"`
	SafeSearch int    `json:"safe_search,omitempty" jsonschema:"Safe search level (0, 1, 2)"`
}

// Request converts the tool arguments into a backend request.
// Page and safe_search defaults are filled in by the input schema.
func (in SearchInput) Request() searxng.SearchRequest {
	return searxng.SearchRequest{
		Query:      in.Query,
		Categories: in.Categories,
		Engines:    in.Engines,
		Language:   in.Language,
		Page:       in.Page,
		TimeRange:  in.TimeRange,
		SafeSearch: in.SafeSearch,
	}
}

// EnginesInput is the (empty) argument object of get_available_engines.
type EnginesInput struct{}

// SearchInputSchema derives the search schema from SearchInput and adds the
// constraints struct tags cannot express.
func SearchInputSchema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[SearchInput](nil)
	if err != nil {
		return nil, fmt.Errorf("search input schema: %w", err)
	}

	minLen := 1
	schema.Properties["query"].MinLength = &minLen

	one, two := 1.0, 2.0
	zero := 0.0
	page := schema.Properties["page"]
	page.Default = json.RawMessage(`1`)
	page.Minimum = &one

	safeSearch := schema.Properties["safe_search"]
	safeSearch.Default = json.RawMessage(`1`)
	safeSearch.Minimum = &zero
	safeSearch.Maximum = &two

	return schema, nil
}

func openWorld() *bool {
	v := true
	return &v
}

func searchTool(schema *jsonschema.Schema) *mcp.Tool {
	return &mcp.Tool{
		Name:        BuiltinSearch,
		Description: "Search using SearXNG",
		InputSchema: schema,
		Annotations: &mcp.ToolAnnotations{
			Title:         "SearXNG Search",
			ReadOnlyHint:  true,
			OpenWorldHint: openWorld(),
		},
	}
}

func enginesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        BuiltinGetAvailableEngines,
		Description: "Get information about available search engines",
		Annotations: &mcp.ToolAnnotations{
			Title:         "SearXNG Engines",
			ReadOnlyHint:  true,
			OpenWorldHint: openWorld(),
		},
	}
}

// SearchHandler forwards a search call to backend. Backend errors are
// returned as-is; the SDK reports them to the client as a tool error.
func SearchHandler(backend Backend) mcp.ToolHandlerFor[SearchInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, any, error) {
		payload, err := backend.Search(ctx, in.Request())
		if err != nil {
			return nil, nil, err
		}
		res, err := payloadResult(payload)
		return res, nil, err
	}
}

// EnginesHandler forwards a get_available_engines call to backend.
func EnginesHandler(backend Backend) mcp.ToolHandlerFor[EnginesInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ EnginesInput) (*mcp.CallToolResult, any, error) {
		payload, err := backend.ListEngines(ctx)
		if err != nil {
			return nil, nil, err
		}
		res, err := payloadResult(payload)
		return res, nil, err
	}
}

// payloadResult encodes payload once and uses the same bytes for the
// structured content and the text block. Tools are registered without an
// output schema: the SDK would otherwise re-decode the output into float64
// numbers before sending it.
func payloadResult(payload searxng.Payload) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return &mcp.CallToolResult{
		StructuredContent: json.RawMessage(data),
		Content:           []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil
}

// RegisterBuiltins installs search and get_available_engines on r.
func RegisterBuiltins(r *Registry, backend Backend) error {
	if backend == nil {
		return ErrNilBackend
	}
	schema, err := SearchInputSchema()
	if err != nil {
		return err
	}
	if err := Add(r, searchTool(schema), SearchHandler(backend)); err != nil {
		return err
	}
	return Add(r, enginesTool(), EnginesHandler(backend))
}
