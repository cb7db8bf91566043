// Package tui provides an interactive terminal user interface for tavern.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/tavern/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Listings searches hh.ru and manages saved listings.
	Listings driving.ListingService

	// Changes reports store modifications. Optional; without it the saved
	// view only reloads after its own actions.
	Changes driving.ChangeNotifier
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Listings == nil {
		return ErrMissingListingService
	}
	return nil
}
