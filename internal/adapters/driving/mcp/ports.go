package mcp

import (
	"github.com/custodia-labs/droppath/internal/core/domain"
	"github.com/custodia-labs/droppath/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Drop accepts URLs as scan targets.
	Drop driving.DropService

	// Target lists targets. Optional.
	Target driving.TargetService

	// Platform is the default conversion platform for resolve_local_paths.
	Platform domain.Platform
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Drop == nil {
		return ErrMissingDropService
	}
	return nil
}
