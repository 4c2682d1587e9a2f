package domain

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/svgl/svgl-mcp/internal/services/mcp/svgl"
)

// Catalog is the read-only catalog surface the handlers depend on.
// Each call returns the upstream JSON body as received. *svgl.Client
// satisfies it.
type Catalog interface {
	ListAll(ctx context.Context, limit *int) (json.RawMessage, error)
	ListCategories(ctx context.Context) (json.RawMessage, error)
	ListByCategory(ctx context.Context, category string) (json.RawMessage, error)
	Search(ctx context.Context, query string) (json.RawMessage, error)
}

// HTTPDoer performs direct fetches outside the catalog client.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

var _ Catalog = (*svgl.Client)(nil)
