// Package svgl is the HTTP client for the public SVGL logo catalog.
//
// Every client failure is reported as an *APIError so callers can tell a
// catalog failure apart from anything else raised on their own call path.
package svgl
