package driving

import (
	"context"

	"github.com/custodia-labs/tavern/internal/core/domain"
)

// ListingService searches the remote job board and manages saved listings.
type ListingService interface {
	// Search fetches and normalises listings for query without saving them.
	Search(ctx context.Context, query string) (*SearchReport, error)

	// SearchAndSave fetches, normalises and adds every listing to the store.
	SearchAndSave(ctx context.Context, query string) (*SearchReport, error)

	// Saved returns stored listings matching filter, or all when it is empty.
	Saved(ctx context.Context, filter string) ([]domain.Listing, error)

	// Delete removes the stored listings sharing the listing's URL.
	Delete(ctx context.Context, listing domain.Listing) (bool, error)

	// DeleteByURL removes the stored listings with the given URL.
	DeleteByURL(ctx context.Context, url string) (bool, error)
}

// SearchReport summarises a remote search.
type SearchReport struct {
	// Query is the text that was searched for.
	Query string

	// Listings are the normalised results, in source order.
	Listings []domain.Listing

	// Added counts listings newly written to the store.
	Added int

	// Existing counts listings whose URL was already stored.
	Existing int

	// Skipped counts raw records that could not be normalised.
	Skipped int
}

// Found returns the number of normalised listings.
func (r *SearchReport) Found() int {
	return len(r.Listings)
}

// ChangeNotifier signals when the saved listings change on disk.
type ChangeNotifier interface {
	// Watch returns a channel that receives a value after every change.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
