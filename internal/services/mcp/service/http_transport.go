package service

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/svgl/svgl-mcp/internal/platform/branding"
	"github.com/svgl/svgl-mcp/internal/platform/timeouts"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultHTTPAddr = "localhost:8081"
	mcpPath         = "/mcp"
	healthPath      = "/mcp/health"
	metricsPath     = "/metrics"
)

var listenTCP = net.Listen

// HTTPTransport serves MCP over streamable HTTP.
//
// Every route passes the Host/Origin guard; the MCP route hands sessions to the
// SDK streamable handler so this type only owns listener lifecycle.
type HTTPTransport struct {
	addr           string
	allowedHosts   map[string]struct{}
	server         *mcp.Server
	metricsHandler http.Handler
	httpServer     *http.Server
}

// NewHTTPTransport creates a new HTTP transport that will serve server.
// It defaults to localhost-only binding unless explicit hosts broaden access.
func NewHTTPTransport(addr string, server *mcp.Server, allowedHosts []string) *HTTPTransport {
	if addr == "" {
		addr = defaultHTTPAddr
	}
	return &HTTPTransport{
		addr:         addr,
		allowedHosts: parseAllowedHosts(allowedHosts),
		server:       server,
	}
}

// Handler builds the HTTP routing for the transport.
func (t *HTTPTransport) Handler() http.Handler {
	mux := http.NewServeMux()

	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return t.server
	}, nil)
	mux.Handle(mcpPath, t.guard(streamable))
	mux.HandleFunc(healthPath, t.handleHealth)
	if t.metricsHandler != nil {
		mux.Handle(metricsPath, t.guard(t.metricsHandler))
	}

	return otelhttp.NewHandler(mux, branding.AppName)
}

// Start starts the HTTP server and blocks until ctx ends or serving fails.
func (t *HTTPTransport) Start(ctx context.Context) error {
	if t.server == nil {
		return fmt.Errorf("MCP server is not configured")
	}

	t.httpServer = &http.Server{
		Addr:              t.addr,
		Handler:           t.Handler(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	listener, err := listenTCP("tcp", t.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", t.addr, err)
	}
	log.Printf("Starting MCP HTTP server on %s", listener.Addr())

	errChan := make(chan error, 1)
	go func() {
		if err := t.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Printf("Shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := t.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("HTTP server error: %w", err)
	}
}
