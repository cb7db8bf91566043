package search

import "errors"

// Error definitions for the search view.
var (
	// ErrNoListingService indicates that no listing service was provided.
	ErrNoListingService = errors.New("listing service is required")
)
