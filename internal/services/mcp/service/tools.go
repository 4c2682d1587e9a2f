package service

import (
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/svgl/svgl-mcp/internal/services/mcp/domain"
)

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
	AddResource(*mcp.Resource, mcp.ResourceHandler)
}

// registerCatalogTools registers the four catalog query tools.
func registerCatalogTools(registrar mcpRegistrationTarget, catalog domain.Catalog) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.GetAllSVGsTool(), handler: domain.GetAllSVGsHandler(catalog)},
		{tool: domain.GetCategoriesTool(), handler: domain.GetCategoriesHandler(catalog)},
		{tool: domain.GetSVGsByCategoryTool(), handler: domain.GetSVGsByCategoryHandler(catalog)},
		{tool: domain.SearchSVGsTool(), handler: domain.SearchSVGsHandler(catalog)},
	}
	for _, registration := range registrations {
		if err := registerTool(registrar, registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}

// registerDownloadTools registers the direct SVG download tool.
func registerDownloadTools(registrar mcpRegistrationTarget, client domain.HTTPDoer) error {
	return registerTool(registrar, domain.SaveSVGFromURLTool(), domain.SaveSVGFromURLHandler(client))
}

func registerTool(registrar mcpRegistrationTarget, tool *mcp.Tool, handler any) error {
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	return registrar.AddTool(tool, handler)
}

// registerCatalogResources registers the static and live catalog resources.
func registerCatalogResources(registrar mcpRegistrationTarget, catalog domain.Catalog) {
	registrar.AddResource(domain.APIInfoResource(), domain.APIInfoResourceHandler())
	registrar.AddResource(domain.CategoriesOverviewResource(), domain.CategoriesOverviewResourceHandler(catalog, time.Now))
}
