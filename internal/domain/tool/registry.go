package tool

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	ErrToolAlreadyRegistered = errors.New("tool already registered")
	ErrToolNameRequired      = errors.New("tool name is required")
	ErrNilBackend            = errors.New("tool backend is nil")
)

// Registry tracks the tools installed on an MCP server.
// mcp.Server silently replaces a tool registered twice; Registry refuses instead.
type Registry struct {
	server *mcp.Server
	names  map[string]struct{}
}

func NewRegistry(server *mcp.Server) *Registry {
	return &Registry{server: server, names: make(map[string]struct{})}
}

// Add registers a typed tool handler on the registry's server.
func Add[In, Out any](r *Registry, t *mcp.Tool, h mcp.ToolHandlerFor[In, Out]) error {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return ErrToolNameRequired
	}
	if _, exists := r.names[name]; exists {
		return fmt.Errorf("%w: %s", ErrToolAlreadyRegistered, name)
	}
	mcp.AddTool(r.server, t, h)
	r.names[name] = struct{}{}
	return nil
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.names))
	for name := range r.names {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
