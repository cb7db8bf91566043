// Package mcp provides an MCP (Model Context Protocol) server adapter for Tavern.
// It lets AI assistants search hh.ru and manage the saved vacancies.
package mcp

import "errors"

// ErrMissingListingService is returned when the listing service is not provided.
var ErrMissingListingService = errors.New("mcp: listing service is required")
