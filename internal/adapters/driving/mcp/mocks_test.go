package mcp

import (
	"context"

	"github.com/custodia-labs/tavern/internal/core/domain"
	"github.com/custodia-labs/tavern/internal/core/ports/driving"
)

// mockListingService is a mock implementation of driving.ListingService.
type mockListingService struct {
	listings []domain.Listing
	report   *driving.SearchReport
	removed  bool
	err      error

	// recorded calls
	savedFilter string
	searched    string
	saved       bool
	deletedURL  string
}

func (m *mockListingService) Search(_ context.Context, query string) (*driving.SearchReport, error) {
	m.searched = query
	m.saved = false
	return m.reportFor(query), m.err
}

func (m *mockListingService) SearchAndSave(_ context.Context, query string) (*driving.SearchReport, error) {
	m.searched = query
	m.saved = true
	return m.reportFor(query), m.err
}

func (m *mockListingService) reportFor(query string) *driving.SearchReport {
	if m.err != nil {
		return nil
	}
	if m.report != nil {
		return m.report
	}
	return &driving.SearchReport{Query: query}
}

func (m *mockListingService) Saved(_ context.Context, filter string) ([]domain.Listing, error) {
	m.savedFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return domain.FilterListings(append([]domain.Listing{}, m.listings...), filter), nil
}

func (m *mockListingService) Delete(_ context.Context, l domain.Listing) (bool, error) {
	m.deletedURL = l.URL
	return m.removed, m.err
}

func (m *mockListingService) DeleteByURL(_ context.Context, url string) (bool, error) {
	m.deletedURL = url
	return m.removed, m.err
}

func sampleListings() []domain.Listing {
	return []domain.Listing{
		{Name: "Cashier", URL: "https://hh.ru/vacancy/1", Description: "Easy work", Salary: 50000, CompanyName: "K&B"},
		{Name: "Python Developer", URL: "https://hh.ru/vacancy/2", Description: "Django", Salary: 250000, CompanyName: "PyCorp"},
		{Name: "Intern", URL: "https://hh.ru/vacancy/3", Description: "Learn Python", Salary: 0, CompanyName: "Pohab"},
	}
}
