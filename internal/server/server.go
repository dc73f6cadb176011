// Package server wires the SearXNG tools into an MCP server and runs it over
// the configured transport.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/matiasleandrokruk/searxng-mcp/internal/api"
	"github.com/matiasleandrokruk/searxng-mcp/internal/domain/tool"
	"github.com/matiasleandrokruk/searxng-mcp/internal/infra/config"
	"github.com/matiasleandrokruk/searxng-mcp/internal/version"
)

const (
	// DisplayName is the human-readable server title shown by MCP clients.
	DisplayName = "SearxNG MCP Server"

	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 15 * time.Second
	idleTimeout       = 60 * time.Second
)

// Server owns the MCP server and, for the http transport, its HTTP listener.
type Server struct {
	config config.Config
	mcp    *mcp.Server
	tools  *tool.Registry
	http   *http.Server
	log    zerolog.Logger
}

// New builds a Server for a validated cfg with the built-in tools registered
// against backend.
func New(cfg config.Config, backend tool.Backend, log zerolog.Logger) (*Server, error) {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    version.Name,
		Title:   DisplayName,
		Version: version.Version,
	}, nil)

	tools := tool.NewRegistry(mcpServer)
	if err := tool.RegisterBuiltins(tools, backend); err != nil {
		return nil, fmt.Errorf("register tools: %w", err)
	}

	s := &Server{
		config: cfg,
		mcp:    mcpServer,
		tools:  tools,
		log:    log,
	}

	if cfg.Transport == config.TransportHTTP {
		mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return mcpServer
		}, nil)
		s.http = &http.Server{
			Addr: cfg.Listen,
			Handler: api.NewRouter(mcpHandler, api.Options{
				AuthSecret: []byte(cfg.AuthSecret),
				Logger:     log,
			}),
			ReadHeaderTimeout: readHeaderTimeout,
			IdleTimeout:       idleTimeout,
		}
	}

	log.Info().Strs("tools", tools.Names()).Msg("Server initialization complete")
	return s, nil
}

// Tools returns the names of the registered tools.
func (s *Server) Tools() []string {
	return s.tools.Names()
}

// Run serves until ctx is cancelled or, for stdio, the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	switch s.config.Transport {
	case config.TransportHTTP:
		return s.runHTTP(ctx)
	default:
		return s.RunTransport(ctx, &mcp.StdioTransport{})
	}
}

// RunTransport serves a single MCP session over t.
func (s *Server) RunTransport(ctx context.Context, t mcp.Transport) error {
	s.log.Info().Str("transport", s.config.Transport).Msg("Starting SearXNG MCP Server")
	err := s.mcp.Run(ctx, t)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *Server) runHTTP(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.http.Addr).Str("path", api.MCPPath).
			Bool("auth", s.config.AuthSecret != "").
			Msg("Starting SearXNG MCP Server over HTTP")
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown gracefully stops the HTTP listener. It is a no-op for stdio.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	s.log.Info().Msg("Shutting down server...")
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	s.log.Info().Msg("Server shutdown complete")
	return nil
}
