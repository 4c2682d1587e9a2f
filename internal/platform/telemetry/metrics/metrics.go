package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	methodCallTool     = "tools/call"
	methodReadResource = "resources/read"
)

// Outcome labels recorded for each request.
const (
	OutcomeOK        = "ok"
	OutcomeToolError = "tool_error"
	OutcomeError     = "error"
)

// Metrics holds the Prometheus collectors for MCP traffic.
type Metrics struct {
	toolCalls     *prometheus.CounterVec
	toolDuration  *prometheus.HistogramVec
	resourceReads *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates a metrics instance backed by its own registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		toolCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "svgl_mcp_tool_calls_total",
				Help: "Total number of MCP tool calls by tool and outcome",
			},
			[]string{"tool", "outcome"},
		),
		toolDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "svgl_mcp_tool_call_duration_seconds",
				Help:    "MCP tool call latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"tool"},
		),
		resourceReads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "svgl_mcp_resource_reads_total",
				Help: "Total number of MCP resource reads by URI and outcome",
			},
			[]string{"uri", "outcome"},
		),
		registry: registry,
	}

	registry.MustRegister(m.toolCalls, m.toolDuration, m.resourceReads)
	return m
}

// Registry exposes the underlying registry for scraping or tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records tool calls and resource reads passing through the server.
// A nil receiver yields a pass-through middleware.
func (m *Metrics) Middleware() mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		if m == nil {
			return next
		}
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			switch method {
			case methodCallTool:
				return m.observeToolCall(ctx, method, req, next)
			case methodReadResource:
				return m.observeResourceRead(ctx, method, req, next)
			default:
				return next(ctx, method, req)
			}
		}
	}
}

func (m *Metrics) observeToolCall(ctx context.Context, method string, req mcp.Request, next mcp.MethodHandler) (mcp.Result, error) {
	name := "unknown"
	if call, ok := req.(*mcp.CallToolRequest); ok && call.Params != nil && call.Params.Name != "" {
		name = call.Params.Name
	}

	start := time.Now()
	result, err := next(ctx, method, req)
	m.toolDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	outcome := OutcomeOK
	switch {
	case err != nil:
		outcome = OutcomeError
	default:
		if res, ok := result.(*mcp.CallToolResult); ok && res != nil && res.IsError {
			outcome = OutcomeToolError
		}
	}
	m.toolCalls.WithLabelValues(name, outcome).Inc()
	return result, err
}

func (m *Metrics) observeResourceRead(ctx context.Context, method string, req mcp.Request, next mcp.MethodHandler) (mcp.Result, error) {
	uri := "unknown"
	if read, ok := req.(*mcp.ReadResourceRequest); ok && read.Params != nil && read.Params.URI != "" {
		uri = read.Params.URI
	}

	result, err := next(ctx, method, req)
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.resourceReads.WithLabelValues(uri, outcome).Inc()
	return result, err
}
