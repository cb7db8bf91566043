package driven

import (
	"context"

	"github.com/custodia-labs/tavern/internal/core/domain"
)

// ListingStore persists listings. The URL is the identity key.
type ListingStore interface {
	// Add appends a listing unless one with the same URL is stored.
	// Returns domain.ErrAlreadyExists, without writing, in that case.
	Add(ctx context.Context, listing domain.Listing) error

	// Query returns stored listings in insertion order. A non-empty filter
	// keeps only listings whose name, description or company name contain it,
	// compared case-insensitively.
	Query(ctx context.Context, filter string) ([]domain.Listing, error)

	// Delete removes every listing sharing the given listing's URL and
	// reports whether anything was removed.
	Delete(ctx context.Context, listing domain.Listing) (bool, error)
}
