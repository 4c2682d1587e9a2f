package domain

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool names exposed to MCP clients.
const (
	GetAllSVGsToolName        = "get_all_svgs"
	GetCategoriesToolName     = "get_categories"
	GetSVGsByCategoryToolName = "get_svgs_by_category"
	SearchSVGsToolName        = "search_svgs"
	SaveSVGFromURLToolName    = "save_svg_from_url"
)

// GetAllSVGsInput represents the MCP tool input for listing logos.
type GetAllSVGsInput struct {
	Limit *int `json:"limit,omitempty" jsonschema:"Maximum number of SVGs to return (optional)"`
}

// GetCategoriesInput represents the MCP tool input for listing categories.
type GetCategoriesInput struct{}

// GetSVGsByCategoryInput represents the MCP tool input for a category listing.
type GetSVGsByCategoryInput struct {
	Category string `json:"category" jsonschema:"The category name to filter by (e.g. 'software' or 'framework' or 'library')"`
}

// SearchSVGsInput represents the MCP tool input for a title search.
type SearchSVGsInput struct {
	Query string `json:"query" jsonschema:"The search term to look for in SVG titles"`
}

// SaveSVGFromURLInput represents the MCP tool input for downloading an SVG.
type SaveSVGFromURLInput struct {
	URL string `json:"url" jsonschema:"URL of the SVG asset to download"`
}

// GetAllSVGsTool defines the MCP tool schema for listing logos.
func GetAllSVGsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        GetAllSVGsToolName,
		Description: "Returns all the SVGs in the repository.",
	}
}

// GetCategoriesTool defines the MCP tool schema for listing categories.
func GetCategoriesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        GetCategoriesToolName,
		Description: "Returns only categories with the number of SVGs in each category.",
	}
}

// GetSVGsByCategoryTool defines the MCP tool schema for a category listing.
func GetSVGsByCategoryTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        GetSVGsByCategoryToolName,
		Description: "Returns all the SVGs in the repository that match the category.",
	}
}

// SearchSVGsTool defines the MCP tool schema for a title search.
func SearchSVGsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        SearchSVGsToolName,
		Description: "Returns all the SVGs in the repository that match the name.",
	}
}

// SaveSVGFromURLTool defines the MCP tool schema for downloading an SVG.
func SaveSVGFromURLTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        SaveSVGFromURLToolName,
		Description: "Download an SVG from the URL",
	}
}

// GetAllSVGsHandler lists logos, optionally capped by limit.
func GetAllSVGsHandler(catalog Catalog) mcp.ToolHandlerFor[GetAllSVGsInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetAllSVGsInput) (*mcp.CallToolResult, any, error) {
		if catalog == nil {
			return nil, nil, fmt.Errorf("catalog client is not configured")
		}
		svgs, err := catalog.ListAll(ctx, input.Limit)
		return envelopeResult(svgs, err)
	}
}

// GetCategoriesHandler lists categories with their logo counts.
func GetCategoriesHandler(catalog Catalog) mcp.ToolHandlerFor[GetCategoriesInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ GetCategoriesInput) (*mcp.CallToolResult, any, error) {
		if catalog == nil {
			return nil, nil, fmt.Errorf("catalog client is not configured")
		}
		categories, err := catalog.ListCategories(ctx)
		return envelopeResult(categories, err)
	}
}

// GetSVGsByCategoryHandler lists the logos in one category.
func GetSVGsByCategoryHandler(catalog Catalog) mcp.ToolHandlerFor[GetSVGsByCategoryInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetSVGsByCategoryInput) (*mcp.CallToolResult, any, error) {
		if catalog == nil {
			return nil, nil, fmt.Errorf("catalog client is not configured")
		}
		svgs, err := catalog.ListByCategory(ctx, input.Category)
		return envelopeResult(svgs, err)
	}
}

// SearchSVGsHandler searches logos by title.
func SearchSVGsHandler(catalog Catalog) mcp.ToolHandlerFor[SearchSVGsInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SearchSVGsInput) (*mcp.CallToolResult, any, error) {
		if catalog == nil {
			return nil, nil, fmt.Errorf("catalog client is not configured")
		}
		svgs, err := catalog.Search(ctx, input.Query)
		return envelopeResult(svgs, err)
	}
}

// SaveSVGFromURLHandler downloads the body at input.URL as text.
//
// The fetch bypasses the catalog client: the response status is not checked
// and a failed fetch is returned as a plain handler error, never as an error
// envelope. Only a classified catalog failure would be enveloped here, and
// this path cannot produce one.
func SaveSVGFromURLHandler(client HTTPDoer) mcp.ToolHandlerFor[SaveSVGFromURLInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SaveSVGFromURLInput) (*mcp.CallToolResult, any, error) {
		if client == nil {
			return nil, nil, fmt.Errorf("http client is not configured")
		}
		svg, err := fetchText(ctx, client, input.URL)
		return envelopeResult(svg, err)
	}
}

func fetchText(ctx context.Context, client HTTPDoer, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build svg request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch svg: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read svg body: %w", err)
	}
	return string(body), nil
}
