package mcp

import (
	"github.com/custodia-labs/tavern/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
type Ports struct {
	// Listings searches hh.ru and manages saved listings.
	Listings driving.ListingService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Listings == nil {
		return ErrMissingListingService
	}
	return nil
}
