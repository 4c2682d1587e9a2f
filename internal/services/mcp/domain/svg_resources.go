package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/svgl/svgl-mcp/internal/platform/branding"
	"github.com/svgl/svgl-mcp/internal/services/mcp/svgl"
)

// Resource URIs exposed to MCP clients.
var (
	APIInfoURI            = branding.ResourceScheme + "://api-info"
	CategoriesOverviewURI = branding.ResourceScheme + "://categories-overview"
)

const (
	categoriesOverviewDescription = "All available categories in the SVGL library"
	categoriesOverviewFailure     = "Failed to fetch categories"
	isoMillisLayout               = "2006-01-02T15:04:05.000Z"
)

const apiInfoText = `SVGL API Information

The SVGL API is a RESTful API that provides access to a beautiful library of SVG logos.

Base URL: ` + svgl.DefaultBaseURL + `

Available endpoints:
1. GET / - Returns all SVGs in the repository
2. GET /?limit=N - Returns a limited number of SVGs
3. GET /category/{category} - Returns SVGs filtered by category
4. GET /categories - Returns all categories with counts
5. GET /?search={query} - Returns SVGs matching the search query

The API is open and does not require authentication, but usage should be reasonable to prevent abuse.

Data formats:
- All endpoints return JSON
- SVG data includes title, category, route (URL to SVG), and optional wordmark/brand URLs
- Categories include name and total count of SVGs in each category
- Routes can be simple strings or objects with light/dark theme options

Rate limiting: Please use responsibly. The API is intended for extensions, plugins, and tools that help the community.`

// CategoriesOverviewPayload is the categories overview document on success.
// Categories is the upstream listing as received. TotalCategories is the
// number of entries when that listing is an array and is omitted otherwise.
type CategoriesOverviewPayload struct {
	Description     string          `json:"description"`
	TotalCategories *int            `json:"totalCategories,omitempty"`
	Categories      json.RawMessage `json:"categories"`
	LastUpdated     string          `json:"lastUpdated"`
}

// CategoriesOverviewFailure is the categories overview document when the
// catalog could not be reached.
type CategoriesOverviewFailure struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode *int   `json:"statusCode,omitempty"`
}

// APIInfoResource defines the static API description resource.
func APIInfoResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "api-info",
		Title:       "SVGL API information",
		Description: "Endpoints, data formats and usage policy of the SVGL API",
		MIMEType:    "text/plain",
		URI:         APIInfoURI,
	}
}

// APIInfoResourceHandler serves the static API description.
func APIInfoResourceHandler() mcp.ResourceHandler {
	return func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      APIInfoURI,
					MIMEType: "text/plain",
					Text:     apiInfoText,
				},
			},
		}, nil
	}
}

// CategoriesOverviewResource defines the live categories overview resource.
func CategoriesOverviewResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "categories-overview",
		Title:       "SVGL categories overview",
		Description: "Live list of SVGL categories with counts",
		MIMEType:    "application/json",
		URI:         CategoriesOverviewURI,
	}
}

// CategoriesOverviewResourceHandler fetches categories on every read. Catalog
// failures are reported inside the document; the read itself succeeds.
func CategoriesOverviewResourceHandler(catalog Catalog, now func() time.Time) mcp.ResourceHandler {
	if now == nil {
		now = time.Now
	}
	return func(ctx context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		var document any
		categories, err := listCategories(ctx, catalog)
		if err != nil {
			document = newCategoriesOverviewFailure(err)
		} else {
			document = CategoriesOverviewPayload{
				Description:     categoriesOverviewDescription,
				TotalCategories: countEntries(categories),
				Categories:      categories,
				LastUpdated:     now().UTC().Format(isoMillisLayout),
			}
		}

		data, err := marshalIndent(document)
		if err != nil {
			return nil, fmt.Errorf("marshal categories overview: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      CategoriesOverviewURI,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}

func listCategories(ctx context.Context, catalog Catalog) (json.RawMessage, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog client is not configured")
	}
	return catalog.ListCategories(ctx)
}

// countEntries reports the length of a JSON array, or nil for any other value.
func countEntries(listing json.RawMessage) *int {
	var entries []json.RawMessage
	if err := json.Unmarshal(listing, &entries); err != nil {
		return nil
	}
	count := len(entries)
	return &count
}

func newCategoriesOverviewFailure(err error) CategoriesOverviewFailure {
	failure := CategoriesOverviewFailure{
		Error:   categoriesOverviewFailure,
		Message: "Unknown error",
	}
	if apiErr, ok := svgl.AsAPIError(err); ok {
		failure.Message = apiErr.Message
		failure.StatusCode = apiErr.StatusCode
		return failure
	}
	if err != nil && err.Error() != "" {
		failure.Message = err.Error()
	}
	return failure
}
