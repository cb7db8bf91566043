package tui

import "errors"

// ErrMissingListingService is returned when the listing service is not provided.
var ErrMissingListingService = errors.New("tui: listing service is required")

// ErrNotATerminal is returned when the TUI is started without a terminal.
var ErrNotATerminal = errors.New("tui: standard output is not a terminal")
