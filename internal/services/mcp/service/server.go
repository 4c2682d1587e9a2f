package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/svgl/svgl-mcp/internal/platform/branding"
	"github.com/svgl/svgl-mcp/internal/platform/telemetry/metrics"
	"github.com/svgl/svgl-mcp/internal/services/mcp/svgl"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	// BaseURL overrides the SVGL API endpoint; empty uses the public API.
	BaseURL string

	Transport TransportKind
	HTTPAddr  string // HTTP server address (e.g., "localhost:8081"). Defaults to localhost:8081 for HTTP transport.

	// AllowedHosts extends the loopback-only Host/Origin policy of the HTTP transport.
	AllowedHosts []string

	// HTTPClient is used for catalog queries and direct SVG downloads.
	HTTPClient *http.Client

	// Metrics collects tool and resource traffic when set.
	Metrics *metrics.Metrics
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
	catalog   *svgl.Client
	metrics   *metrics.Metrics
}

// New creates a configured MCP server whose tool and resource handlers share
// one catalog client built from cfg.
func New(cfg Config) (*Server, error) {
	catalog := svgl.NewClient(
		svgl.WithBaseURL(cfg.BaseURL),
		svgl.WithHTTPClient(cfg.HTTPClient),
	)
	return newServer(catalog, cfg.Metrics)
}

// newServer creates MCP tool/resource handler bindings once around an
// immutable catalog client.
func newServer(catalog *svgl.Client, m *metrics.Metrics) (*Server, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog client is required")
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: branding.AppName, Version: branding.AppVersion}, nil)
	if m != nil {
		mcpServer.AddReceivingMiddleware(m.Middleware())
	}

	server := &Server{mcpServer: mcpServer, catalog: catalog, metrics: m}
	if err := registerMCPModules(mcpServerRegistrationAdapter{server: mcpServer}, newMCPRegistrationModules(catalog)); err != nil {
		return nil, err
	}
	return server, nil
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
// Context cancellation is a clean stop.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
