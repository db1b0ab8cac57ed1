// Package tui provides the interactive drop zone for droppath.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/droppath/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Drop accepts dropped URLs and records history.
	Drop driving.DropService

	// Target manages the target list.
	Target driving.TargetService

	// Settings is optional; it supplies the platform shown in the header.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(drop driving.DropService, target driving.TargetService) *Ports {
	return &Ports{
		Drop:   drop,
		Target: target,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Drop == nil {
		return ErrMissingDropService
	}
	if p.Target == nil {
		return ErrMissingTargetService
	}
	return nil
}
