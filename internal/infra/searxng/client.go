// Package searxng is the HTTP adapter for a SearXNG instance.
// Endpoints used:
//   - GET /search?format=json — run a query
//   - GET /config             — instance configuration, including engines
//
// Every call is a single request: no retries, no caching.
package searxng

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/matiasleandrokruk/searxng-mcp/internal/version"
)

const (
	mimeJSON     = "application/json"
	headerAccept = "Accept"
	headerUA     = "User-Agent"

	pathSearch = "/search"
	pathConfig = "/config"

	// maxErrorBody caps how much of a failed response is kept in HTTPError.
	maxErrorBody = 4 << 10
)

// Client calls the SearXNG REST API. It is safe for concurrent use; the
// underlying http.Client is created once and shared by all calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a Client for baseURL, which must already be resolved
// (no trailing slash). A zero timeout leaves requests unbounded except by ctx.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.With().Str("component", "searxng").Logger(),
	}
}

// BaseURL returns the backend URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Search runs req against GET /search and returns the decoded body unchanged.
func (c *Client) Search(ctx context.Context, req SearchRequest) (Payload, error) {
	if req.Query == "" {
		return nil, ErrEmptyQuery
	}
	c.log.Info().Str("query", req.Query).Msg("Received search request")

	params := req.Params()
	for _, key := range []string{"categories", "engines", "language", "time_range"} {
		if v := params.Get(key); v != "" {
			c.log.Debug().Str(key, v).Msg("Optional search parameter specified")
		}
	}
	c.log.Debug().Str("params", params.Encode()).Msg("Making request to SearXNG")

	payload, err := c.get(ctx, pathSearch, params)
	if err != nil {
		c.logFailure(err, "search")
		return nil, err
	}
	c.log.Info().Int("results", payload.ResultCount()).Msg("Search completed successfully")
	return payload, nil
}

// ListEngines fetches GET /config, which lists the engines the instance offers.
func (c *Client) ListEngines(ctx context.Context) (Payload, error) {
	c.log.Info().Msg("Fetching available engines information")

	payload, err := c.get(ctx, pathConfig, nil)
	if err != nil {
		c.logFailure(err, "fetching engines")
		return nil, err
	}
	c.log.Info().Msg("Successfully retrieved engine information")
	return payload, nil
}

// logFailure separates HTTP-level failures from everything else.
func (c *Client) logFailure(err error, op string) {
	var (
		httpErr *HTTPError
		urlErr  *url.Error
	)
	if errors.As(err, &httpErr) || errors.As(err, &urlErr) {
		c.log.Error().Err(err).Msgf("HTTP error occurred during %s", op)
		return
	}
	c.log.Error().Err(err).Msgf("Unexpected error during %s", op)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// get sends a GET to baseURL+path and decodes the JSON response body.
// Non-2xx responses are returned as *HTTPError.
func (c *Client) get(ctx context.Context, path string, params url.Values) (Payload, error) {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("searxng get %s: build request: %w", path, err)
	}
	req.Header.Set(headerAccept, mimeJSON)
	req.Header.Set(headerUA, version.Name+"/"+version.Version)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searxng get %s: %w", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPError{
			Method:     http.MethodGet,
			URL:        target,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var payload Payload
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("searxng get %s: decode response: %w", path, err)
	}
	if payload == nil {
		return nil, fmt.Errorf("searxng get %s: decode response: %w", path, ErrNullPayload)
	}
	return payload, nil
}
