package domain

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/svgl/svgl-mcp/internal/services/mcp/svgl"
)

// fakeCatalog records the arguments it receives and returns canned values.
type fakeCatalog struct {
	svgs       json.RawMessage
	categories json.RawMessage
	err        error

	calls         int
	lastLimit     *int
	lastCategory  string
	lastQuery     string
	lastOperation string
}

func (f *fakeCatalog) ListAll(_ context.Context, limit *int) (json.RawMessage, error) {
	f.calls++
	f.lastOperation = "list_all"
	f.lastLimit = limit
	return f.svgs, f.err
}

func (f *fakeCatalog) ListCategories(context.Context) (json.RawMessage, error) {
	f.calls++
	f.lastOperation = "list_categories"
	return f.categories, f.err
}

func (f *fakeCatalog) ListByCategory(_ context.Context, category string) (json.RawMessage, error) {
	f.calls++
	f.lastOperation = "list_by_category"
	f.lastCategory = category
	return f.svgs, f.err
}

func (f *fakeCatalog) Search(_ context.Context, query string) (json.RawMessage, error) {
	f.calls++
	f.lastOperation = "search"
	f.lastQuery = query
	return f.svgs, f.err
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil {
		t.Fatal("expected non-nil tool result")
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected one content item, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func decodeEnvelope(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	var envelope map[string]any
	if err := json.Unmarshal([]byte(resultText(t, result)), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return envelope
}

func statusError(t *testing.T, status int, endpoint string) error {
	t.Helper()
	code := status
	return &svgl.APIError{Message: "HTTP 404: Not Found", StatusCode: &code, Endpoint: endpoint}
}
