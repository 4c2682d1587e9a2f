// Package branding holds the identity the MCP server reports to clients.
package branding

// AppName is the MCP implementation name sent during initialization.
const AppName = "svgl-api"

// AppVersion is the MCP implementation version sent during initialization.
const AppVersion = "1.0.0"

// ResourceScheme prefixes every resource URI the server exposes.
const ResourceScheme = "svgl"
