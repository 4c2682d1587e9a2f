// Package domain translates MCP tool calls and resource reads into SVGL
// catalog queries.
//
// The package is intentionally explicit about that mapping:
// - accept the tool's fixed input shape,
// - route the call to the matching catalog query,
// - and shape the outcome into the success or error envelope MCP clients
// render as a single text content item.
package domain
