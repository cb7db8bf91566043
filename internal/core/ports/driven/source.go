package driven

import (
	"context"

	"github.com/custodia-labs/tavern/internal/core/domain"
)

// ListingSource fetches raw job listings from a remote service.
// Each job board (hh.ru, ...) implements this interface.
type ListingSource interface {
	// Type returns the source type identifier.
	Type() string

	// Connect prepares the source for fetching.
	// For HTTP sources this builds the authenticated client; it makes no request.
	Connect(ctx context.Context) error

	// Fetch runs a free-text search and returns a single page of raw records.
	// Transport failures are returned wrapping domain.ErrTransport.
	Fetch(ctx context.Context, query string) (*domain.FetchResult, error)

	// Close releases resources.
	Close() error
}
