// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/tavern/internal/core/domain"
	"github.com/custodia-labs/tavern/internal/core/ports/driving"
)

// SearchCompleted carries the outcome of a remote search.
type SearchCompleted struct {
	Report *driving.SearchReport
	Err    error
}

// SavedLoaded carries stored listings matching Filter.
type SavedLoaded struct {
	Filter   string
	Listings []domain.Listing
	Err      error
}

// ListingDeleted signals a delete finished.
type ListingDeleted struct {
	Listing domain.Listing
	Removed bool
	Err     error
}

// StoreChanged signals the store was modified, possibly by another process.
type StoreChanged struct{}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch searches hh.ru and saves the results.
	ViewSearch
	// ViewSaved browses, filters and deletes saved listings.
	ViewSaved
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewSaved:
		return "saved"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
