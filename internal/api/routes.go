// Route registration for the Streamable HTTP transport.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	apmiddleware "github.com/matiasleandrokruk/searxng-mcp/internal/api/middleware"
)

// MCPPath is where the MCP endpoint is mounted.
const MCPPath = "/mcp"

// Options configures NewRouter.
type Options struct {
	// AuthSecret enables bearer-token auth on MCPPath when non-empty.
	AuthSecret []byte
	Logger     zerolog.Logger
}

// NewRouter creates the chi router serving /health and the MCP endpoint.
func NewRouter(mcpHandler http.Handler, opts Options) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (runs on all routes)
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(opts.Logger))
	r.Use(hlog.RequestIDHandler("req_id", "X-Request-Id"))
	r.Use(hlog.RemoteAddrHandler("remote"))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("HTTP request")
	}))
	r.Use(middleware.Recoverer)

	// Health check, unauthenticated
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck
	})

	r.Group(func(r chi.Router) {
		if len(opts.AuthSecret) > 0 {
			r.Use(apmiddleware.Auth(opts.AuthSecret))
		}
		r.Handle(MCPPath, mcpHandler)
	})

	return r
}
