// Package middleware holds the HTTP middleware for the Streamable HTTP transport.
package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/matiasleandrokruk/searxng-mcp/internal/api/ctxkeys"
	pkgauth "github.com/matiasleandrokruk/searxng-mcp/pkg/auth"
)

// Auth validates the Bearer JWT signed with secret and injects its subject
// into the request context and the request logger.
//
// Flow:
//  1. Read "Authorization: Bearer <token>" header
//  2. Reject if missing or not Bearer scheme → 401
//  3. Parse + validate JWT → 401 on invalid/expired
//  4. Inject ctxkeys.Subject into context
//  5. Call next handler
func Auth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractBearerToken(r)
			if tokenString == "" {
				writeUnauthorized(w, "missing or invalid Authorization header")
				return
			}

			claims, err := pkgauth.ParseToken(tokenString, secret)
			if err != nil {
				hlog.FromRequest(r).Warn().Err(err).Msg("Rejected bearer token")
				writeUnauthorized(w, "invalid or expired token")
				return
			}

			hlog.FromRequest(r).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("subject", claims.Subject)
			})
			ctx := ctxkeys.WithValue(r.Context(), ctxkeys.Subject, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken extracts the token from "Authorization: Bearer <token>".
// Returns empty string if header is missing, wrong scheme, or token is empty.
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	// Must start with "Bearer " (case-sensitive per RFC 7235)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

// writeUnauthorized writes a 401 JSON response.
func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="searxng-mcp"`)
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
