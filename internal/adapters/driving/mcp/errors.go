// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// currency registry. It lets AI assistants resolve currency and country codes.
package mcp

import "errors"

// ErrMissingLookupService is returned when the lookup service is not provided.
var ErrMissingLookupService = errors.New("mcp: lookup service is required")
