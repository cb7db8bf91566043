package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/tavern/internal/core/domain"
	"github.com/custodia-labs/tavern/internal/core/ports/driven"
)

// Ensure ListingStore implements the interface.
var _ driven.ListingStore = (*ListingStore)(nil)

// ListingStore is an in-memory implementation of driven.ListingStore.
type ListingStore struct {
	mu       sync.RWMutex
	listings []domain.Listing
}

// NewListingStore creates a store holding a copy of listings.
func NewListingStore(listings ...domain.Listing) *ListingStore {
	return &ListingStore{listings: append([]domain.Listing{}, listings...)}
}

// Add appends listing unless its URL is already stored.
func (s *ListingStore) Add(_ context.Context, listing domain.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.listings {
		if l.URL == listing.URL {
			return fmt.Errorf("listing %q: %w", listing.URL, domain.ErrAlreadyExists)
		}
	}
	s.listings = append(s.listings, listing)
	return nil
}

// Query returns listings matching filter.
func (s *ListingStore) Query(_ context.Context, filter string) ([]domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.FilterListings(append([]domain.Listing{}, s.listings...), filter), nil
}

// Delete removes every listing sharing listing's URL.
func (s *ListingStore) Delete(_ context.Context, listing domain.Listing) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.listings[:0:0]
	for _, l := range s.listings {
		if l.URL != listing.URL {
			kept = append(kept, l)
		}
	}
	removed := len(kept) < len(s.listings)
	s.listings = kept
	return removed, nil
}

// Len returns the number of stored listings.
func (s *ListingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listings)
}
