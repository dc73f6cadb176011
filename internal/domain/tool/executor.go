package tool

import (
	"context"

	"github.com/matiasleandrokruk/searxng-mcp/internal/infra/searxng"
)

// Backend is the search service the built-in tools forward to.
// *searxng.Client implements it.
type Backend interface {
	Search(ctx context.Context, req searxng.SearchRequest) (searxng.Payload, error)
	ListEngines(ctx context.Context) (searxng.Payload, error)
}
