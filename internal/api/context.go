package api

import (
	"context"

	"github.com/matiasleandrokruk/searxng-mcp/internal/api/ctxkeys"
)

// Subject returns the authenticated token subject set by middleware.Auth.
func Subject(ctx context.Context) (string, error) {
	sub, ok := ctx.Value(ctxkeys.Subject).(string)
	if !ok || sub == "" {
		return "", ErrMissingSubject
	}
	return sub, nil
}
