// Package timeouts defines shared timeout constants for the server process.
// Upstream catalog calls carry no timeout of their own.
package timeouts

import "time"

// ReadHeader limits how long the HTTP transport waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP transport waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// TelemetryFlush bounds the final span flush when the process exits.
const TelemetryFlush = 5 * time.Second
