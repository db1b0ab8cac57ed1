// Package mcp provides an MCP (Model Context Protocol) server adapter for droppath.
// It lets AI assistants convert file URLs to local paths and manage scan targets.
package mcp

import "errors"

// ErrMissingDropService is returned when the drop service is not provided.
var ErrMissingDropService = errors.New("mcp: drop service is required")

// ErrMissingTargetService is returned when a tool needs the target service
// and none was provided.
var ErrMissingTargetService = errors.New("mcp: target service is required")
