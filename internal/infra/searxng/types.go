package searxng

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var (
	// ErrEmptyQuery is returned by Search when the query text is blank.
	ErrEmptyQuery = errors.New("searxng search: query is required")
	// ErrNullPayload is returned when SearXNG answers with a JSON null body.
	ErrNullPayload = errors.New("response body is null, want a JSON object")
)

const (
	defaultPage       = 1
	defaultSafeSearch = 1
)

// Payload is a decoded SearXNG JSON body. Its shape belongs to the backend,
// so it is relayed as-is and never mapped onto a local schema.
type Payload map[string]any

// ResultCount returns len(results) when the payload carries a results array.
func (p Payload) ResultCount() int {
	results, ok := p["results"].([]any)
	if !ok {
		return 0
	}
	return len(results)
}

// SearchRequest is a single query against GET /search.
// Empty optional fields are left out of the outgoing request.
type SearchRequest struct {
	Query      string
	Categories string // comma-separated, e.g. "general,news"
	Engines    string // comma-separated, e.g. "google,duckduckgo"
	Language   string
	Page       int
	TimeRange  string // day, month or year
	SafeSearch int    // 0 off, 1 moderate, 2 strict
}

// NewSearchRequest returns a request for query with page 1 and moderate safe search.
func NewSearchRequest(query string) SearchRequest {
	return SearchRequest{Query: query, Page: defaultPage, SafeSearch: defaultSafeSearch}
}

// Params builds the query string for GET /search.
func (r SearchRequest) Params() url.Values {
	page := r.Page
	if page < 1 {
		page = defaultPage
	}

	params := url.Values{}
	params.Set("q", r.Query)
	params.Set("format", "json")
	params.Set("pageno", strconv.Itoa(page))
	params.Set("safesearch", strconv.Itoa(r.SafeSearch))
	setIfNotEmpty(params, "categories", r.Categories)
	setIfNotEmpty(params, "engines", r.Engines)
	setIfNotEmpty(params, "language", r.Language)
	setIfNotEmpty(params, "time_range", r.TimeRange)
	return params
}

func setIfNotEmpty(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

// HTTPError reports a non-2xx response from SearXNG.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("searxng %s %s: status %d", e.Method, e.URL, e.StatusCode)
	if body := strings.TrimSpace(e.Body); body != "" {
		msg += ": " + body
	}
	return msg
}
