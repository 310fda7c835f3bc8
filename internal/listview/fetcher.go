package listview

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Ibrahim-Omar1/DNNDON/internal/query"
)

// DefaultFetchTimeout bounds a single list fetch.
const DefaultFetchTimeout = 15 * time.Second

// Fetcher retrieves one page of notifications for a query.
type Fetcher interface {
	Fetch(ctx context.Context, q query.ListQuery) (*query.ListResult, error)
}

// HTTPFetcher fetches pages from the notification list endpoint.
// It is safe for concurrent use.
type HTTPFetcher struct {
	baseURL    string
	httpClient *http.Client
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates a fetcher against the server at baseURL
// (e.g. "http://localhost:8080").
func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultFetchTimeout,
		},
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func (f *HTTPFetcher) WithHTTPClient(client *http.Client) *HTTPFetcher {
	f.httpClient = client
	return f
}

type errorResponse struct {
	Error string `json:"error"`
}

// Fetch issues the list request and decodes the page.
func (f *HTTPFetcher) Fetch(ctx context.Context, q query.ListQuery) (*query.ListResult, error) {
	u := f.baseURL + "/api/v1/notifications?" + q.Values().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building list request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching notifications: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
			return nil, fmt.Errorf("list request failed with status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("list request failed with status %d: %s", resp.StatusCode, body.Error)
	}

	var result query.ListResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding list response: %w", err)
	}
	return &result, nil
}
