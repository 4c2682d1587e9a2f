// Package service wires protocol transport to the SVGL domain handlers.
//
// It is the transport adapter layer: the package knows how to run MCP over stdio
// or streamable HTTP and delegates catalog meaning to the domain package.
package service
