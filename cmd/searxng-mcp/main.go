// searxng-mcp exposes a SearXNG instance to MCP clients as two tools:
// search and get_available_engines.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/matiasleandrokruk/searxng-mcp/internal/infra/config"
	"github.com/matiasleandrokruk/searxng-mcp/internal/infra/logging"
	"github.com/matiasleandrokruk/searxng-mcp/internal/infra/searxng"
	"github.com/matiasleandrokruk/searxng-mcp/internal/server"
	"github.com/matiasleandrokruk/searxng-mcp/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process exit. Logs go to errOut: out stays clean
// because the stdio transport owns os.Stdout.
func run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) > 0 && args[0] == "token" {
		return runToken(args[1:], out, errOut)
	}

	fs := pflag.NewFlagSet("searxng-mcp", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	url := fs.String("url", "", "SearXNG instance URL (e.g., https://searx.example.com)")
	configPath := fs.StringP("config", "c", "", "Path to a YAML config file")
	transport := fs.String("transport", config.TransportStdio, "MCP transport: stdio or http")
	listen := fs.String("listen", "", "Listen address for the http transport")
	timeout := fs.Duration("timeout", 0, "Per-request timeout for SearXNG calls (0 = none)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "", "Log format: console or json")
	showVersion := fs.BoolP("version", "v", false, "Show version information")
	showHelp := fs.BoolP("help", "h", false, "Show help")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(out, fs)
			return 0
		}
		fmt.Fprintln(errOut, err) //nolint:errcheck
		return 2
	}

	if *showVersion {
		fmt.Fprintln(out, version.String()) //nolint:errcheck
		return 0
	}
	if *showHelp {
		printHelp(out, fs)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(errOut, err) //nolint:errcheck
		return 1
	}
	overrideString(fs, "url", &cfg.URL, *url)
	overrideString(fs, "transport", &cfg.Transport, *transport)
	overrideString(fs, "listen", &cfg.Listen, *listen)
	overrideString(fs, "log-level", &cfg.LogLevel, *logLevel)
	overrideString(fs, "log-format", &cfg.LogFormat, *logFormat)
	if fs.Changed("timeout") {
		cfg.Timeout = *timeout
	}

	log, err := logging.New(errOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(errOut, err) //nolint:errcheck
		return 1
	}

	log.Info().Str("version", version.Version).Msg("searxng-mcp starting")
	if err := cfg.Validate(); err != nil {
		log.WithLevel(zerolog.FatalLevel).Err(err).Msg("Failed to start server")
		return 1
	}
	log.Info().Str("url", cfg.URL).Dur("timeout", cfg.Timeout).Msg("SearXNG URL configured")

	client := searxng.NewClient(cfg.URL, cfg.Timeout, log)
	srv, err := server.New(cfg, client, log)
	if err != nil {
		log.WithLevel(zerolog.FatalLevel).Err(err).Msg("Failed to start server")
		return 1
	}
	if err := srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
		return 1
	}
	return 0
}

// overrideString applies a flag value only when the flag was given explicitly,
// so config file and env values survive flag defaults.
func overrideString(fs *pflag.FlagSet, name string, dst *string, value string) {
	if fs.Changed(name) {
		*dst = value
	}
}

func printHelp(out io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(out, `SearxNG MCP Server

Usage:
  searxng-mcp --url <searxng-url> [options]
  searxng-mcp token --secret <secret> [--subject <name>] [--ttl <duration>]

Options:
%s
Environment:
  SEARXNG_URL               SearXNG instance URL
  SEARXNG_MCP_TRANSPORT     stdio (default) or http
  SEARXNG_MCP_LISTEN        listen address for http
  SEARXNG_MCP_LOG_LEVEL     log level
  SEARXNG_MCP_LOG_FORMAT    console or json
  SEARXNG_MCP_TIMEOUT       per-request timeout for SearXNG calls, e.g. 10s
  SEARXNG_MCP_AUTH_SECRET   HS256 secret required on /mcp when set

Examples:
  searxng-mcp --url https://searx.example.com
  searxng-mcp --url http://localhost:8888 --transport http --listen :8080
`, fs.FlagUsages()) //nolint:errcheck
}
