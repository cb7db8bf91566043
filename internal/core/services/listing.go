package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/tavern/internal/core/domain"
	"github.com/custodia-labs/tavern/internal/core/ports/driven"
	"github.com/custodia-labs/tavern/internal/core/ports/driving"
	"github.com/custodia-labs/tavern/internal/logger"
)

// Ensure ListingService implements the interface.
var _ driving.ListingService = (*ListingService)(nil)

// ListingService runs the fetch, normalise and save pipeline and manages
// saved listings.
type ListingService struct {
	source     driven.ListingSource
	normaliser driven.Normaliser
	store      driven.ListingStore
}

// NewListingService creates a new listing service.
// The source and normaliser may be nil for read-only use; Search then
// returns domain.ErrInvalidInput.
func NewListingService(
	source driven.ListingSource,
	normaliser driven.Normaliser,
	store driven.ListingStore,
) *ListingService {
	return &ListingService{
		source:     source,
		normaliser: normaliser,
		store:      store,
	}
}

// Search fetches one page of results for query and normalises them.
// Nothing is written to the store.
func (s *ListingService) Search(ctx context.Context, query string) (*driving.SearchReport, error) {
	logger.Section("Search")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", domain.ErrInvalidInput)
	}
	if s.source == nil || s.normaliser == nil {
		return nil, fmt.Errorf("%w: no listing source configured", domain.ErrInvalidInput)
	}

	if err := s.source.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect %s: %w", s.source.Type(), err)
	}

	result, err := s.source.Fetch(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.source.Type(), err)
	}
	logger.Debug("Fetched %d raw records (%d found upstream)", len(result.Items), result.Found)

	batch := s.normaliser.NormaliseMany(ctx, result.Items)

	return &driving.SearchReport{
		Query:    query,
		Listings: batch.Listings,
		Skipped:  len(batch.Failures),
	}, nil
}

// SearchAndSave runs Search and adds every listing to the store.
// Listings whose URL is already stored are counted, not rewritten.
func (s *ListingService) SearchAndSave(ctx context.Context, query string) (*driving.SearchReport, error) {
	report, err := s.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	logger.Section("Save")
	for _, listing := range report.Listings {
		err := s.store.Add(ctx, listing)
		switch {
		case err == nil:
			report.Added++
		case errors.Is(err, domain.ErrAlreadyExists):
			logger.Debug("Already saved: %s", listing.URL)
			report.Existing++
		default:
			return report, fmt.Errorf("save listing: %w", err)
		}
	}
	logger.Info("Added %d listings, %d already saved", report.Added, report.Existing)

	return report, nil
}

// Saved returns stored listings matching filter. The filter is passed to
// the store as given.
func (s *ListingService) Saved(ctx context.Context, filter string) ([]domain.Listing, error) {
	listings, err := s.store.Query(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	return listings, nil
}

// Delete removes every stored listing sharing listing's URL.
func (s *ListingService) Delete(ctx context.Context, listing domain.Listing) (bool, error) {
	removed, err := s.store.Delete(ctx, listing)
	if err != nil {
		return false, fmt.Errorf("delete listing: %w", err)
	}
	if removed {
		logger.Debug("Deleted %s", listing.URL)
	}
	return removed, nil
}

// DeleteByURL removes every stored listing with the given URL.
func (s *ListingService) DeleteByURL(ctx context.Context, url string) (bool, error) {
	return s.Delete(ctx, domain.Listing{URL: url})
}
