// Package metrics provides operational metrics collection for the MCP server.
//
// # Metric Categories
//
//   - Usage: tool call and resource read counts by name and outcome
//   - Latency: tool call duration histograms by tool name
//
// # Integration
//
// Metrics are collected by an MCP receiving middleware and exposed in
// Prometheus format. Collection is enabled only for the HTTP transport, which
// mounts the handler at /metrics; stdio runs install no collector.
package metrics
