// Package ctxkeys holds the context keys shared by the HTTP layer.
// It is a leaf package so middleware and api can both import it.
package ctxkeys

import "context"

// Key is the named type for all API context keys.
// Using a named type avoids collisions with string keys from other packages
// at runtime (context.Value compares both type and value).
type Key string

const (
	// Subject is the "sub" claim of the bearer token that authenticated the request.
	Subject Key = "subject"
)

// WithValue adds a ctxkeys.Key value to the context.
func WithValue(ctx context.Context, key Key, value string) context.Context {
	return context.WithValue(ctx, key, value)
}
