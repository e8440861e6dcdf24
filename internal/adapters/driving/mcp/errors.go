// Package mcp provides an MCP (Model Context Protocol) server adapter for SameDiff.
// It lets AI assistants compare texts and inspect stored similarity reports.
package mcp

import "errors"

// ErrMissingComparisonService is returned when the comparison service is not provided.
var ErrMissingComparisonService = errors.New("mcp: comparison service is required")
