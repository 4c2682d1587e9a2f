// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"log"

	"github.com/svgl/svgl-mcp/internal/platform/branding"
	"github.com/svgl/svgl-mcp/internal/platform/config"
	"github.com/svgl/svgl-mcp/internal/platform/otel"
	"github.com/svgl/svgl-mcp/internal/platform/telemetry/metrics"
	"github.com/svgl/svgl-mcp/internal/platform/timeouts"
	"github.com/svgl/svgl-mcp/internal/services/mcp/service"
	"github.com/svgl/svgl-mcp/internal/services/mcp/svgl"
)

// Config holds MCP command configuration.
type Config struct {
	BaseURL      string   `env:"SVGL_API_BASE_URL"      envDefault:"https://api.svgl.app"`
	HTTPAddr     string   `env:"SVGL_MCP_HTTP_ADDR"     envDefault:"localhost:8081"`
	Transport    string   `env:"SVGL_MCP_TRANSPORT"     envDefault:"stdio"`
	AllowedHosts []string `env:"SVGL_MCP_ALLOWED_HOSTS" envSeparator:","`

	OTel otel.Config
}

// ParseConfig parses environment and flags into a Config. Flags win over
// environment values.
func ParseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg, environ); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "SVGL API base URL")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// serviceConfig maps command configuration onto the MCP service.
func serviceConfig(cfg Config) service.Config {
	serviceCfg := service.Config{
		BaseURL:      cfg.BaseURL,
		Transport:    service.TransportKind(cfg.Transport),
		HTTPAddr:     cfg.HTTPAddr,
		AllowedHosts: cfg.AllowedHosts,
		HTTPClient:   svgl.NewHTTPClient(),
	}
	if serviceCfg.Transport == service.TransportHTTP {
		serviceCfg.Metrics = metrics.New()
	}
	return serviceCfg
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, branding.AppName, cfg.OTel)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.TelemetryFlush)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	return service.Run(ctx, serviceConfig(cfg))
}
