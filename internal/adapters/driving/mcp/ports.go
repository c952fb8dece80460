package mcp

import (
	"github.com/custodia-labs/iso4217/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
type Ports struct {
	// Lookup resolves currencies and countries against the registry.
	Lookup driving.LookupService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Lookup == nil {
		return ErrMissingLookupService
	}
	return nil
}
