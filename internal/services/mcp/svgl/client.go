package svgl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultBaseURL is the public SVGL API endpoint.
const DefaultBaseURL = "https://api.svgl.app"

// Client queries the SVGL catalog. It holds no mutable state and is safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the upstream base URL. An empty value keeps the default.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithHTTPClient replaces the HTTP client used for upstream calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient builds a catalog client.
func NewClient(opts ...Option) *Client {
	c := &Client{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = NewHTTPClient()
	}
	return c
}

// NewHTTPClient returns an HTTP client that traces each request. No timeout
// is set; callers bound requests through their context.
func NewHTTPClient() *http.Client {
	return &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
}

// BaseURL returns the upstream base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient returns the HTTP client shared with other direct fetches.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// ListAll returns every logo, or at most limit logos when limit is set.
func (c *Client) ListAll(ctx context.Context, limit *int) (json.RawMessage, error) {
	return c.getJSON(ctx, ListAllEndpoint(limit))
}

// ListCategories returns every category with its logo count.
func (c *Client) ListCategories(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, CategoriesEndpoint)
}

// ListByCategory returns the logos in a category. Matching is case-insensitive.
func (c *Client) ListByCategory(ctx context.Context, category string) (json.RawMessage, error) {
	return c.getJSON(ctx, CategoryEndpoint(category))
}

// Search returns the logos whose title matches query.
func (c *Client) Search(ctx context.Context, query string) (json.RawMessage, error) {
	return c.getJSON(ctx, SearchEndpoint(query))
}

// CategoriesEndpoint is the path of the category listing.
const CategoriesEndpoint = "/categories"

// ListAllEndpoint builds the path for the full listing.
func ListAllEndpoint(limit *int) string {
	if limit == nil {
		return ""
	}
	return "?limit=" + strconv.Itoa(*limit)
}

// CategoryEndpoint builds the path for a category listing.
func CategoryEndpoint(category string) string {
	return "/category/" + EncodeURIComponent(strings.ToLower(category))
}

// SearchEndpoint builds the path for a title search.
func SearchEndpoint(query string) string {
	return "?search=" + EncodeURIComponent(query)
}

// componentUnescaped are the marks left alone by URI component encoding
// beyond the unreserved set that url.QueryEscape already keeps.
var componentUnescaped = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent percent-encodes s for use inside a single path segment
// or query value. Only A-Z a-z 0-9 and - _ . ! ~ * ' ( ) pass through.
func EncodeURIComponent(s string) string {
	return componentUnescaped.Replace(url.QueryEscape(s))
}

// getJSON returns the response body as received once it parses as JSON.
// The body is not checked against the record types.
func (c *Client) getJSON(ctx context.Context, endpoint string) (json.RawMessage, error) {
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, classify(fmt.Errorf("decode response: %w", err), endpoint)
	}
	return raw, nil
}

// get performs one GET against base+endpoint and returns the raw body.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, classify(err, endpoint)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classify(err, endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, newStatusError(resp.StatusCode, statusReason(resp), endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(fmt.Errorf("read response: %w", err), endpoint)
	}
	return body, nil
}

// statusReason returns the reason phrase the server sent with its status.
func statusReason(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode)
	if reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, prefix)); reason != "" {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}
