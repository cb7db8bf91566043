package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/tavern/internal/core/domain"
)

// SearchInput is the input schema for the search_vacancies tool.
type SearchInput struct {
	Query  string `json:"query" jsonschema:"keywords to search hh.ru for, e.g. python developer"`
	DryRun bool   `json:"dry_run,omitempty" jsonschema:"return the results without saving them"`
}

// SearchOutput is the output schema for the search_vacancies tool.
type SearchOutput struct {
	Query    string           `json:"query"`
	Found    int              `json:"found"`
	Added    int              `json:"added"`
	Existing int              `json:"existing"`
	Skipped  int              `json:"skipped"`
	Listings []domain.Listing `json:"listings"`
}

// ListInput is the input schema for the list_saved tool.
type ListInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"case-insensitive text to match in name, description or company"`
	Sort   string `json:"sort,omitempty" jsonschema:"salary_asc or salary_desc; stored order when empty"`
	Top    int    `json:"top,omitempty" jsonschema:"return at most this many vacancies (0 = all)"`
}

// ListOutput is the output schema for the list_saved tool.
type ListOutput struct {
	Listings []domain.Listing `json:"listings"`
	Count    int              `json:"count"`
}

// DeleteInput is the input schema for the delete_saved tool.
type DeleteInput struct {
	URL string `json:"url" jsonschema:"URL of the saved vacancy to delete; empty matches vacancies saved without a link"`
}

// DeleteOutput is the output schema for the delete_saved tool.
type DeleteOutput struct {
	URL     string `json:"url"`
	Removed bool   `json:"removed"`
}

// Sort keys accepted by list_saved.
const (
	sortSalaryAsc  = "salary_asc"
	sortSalaryDesc = "salary_desc"
)

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_vacancies",
		Description: "Search hh.ru for vacancies and save new ones to the local store",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_saved",
		Description: "List saved vacancies, optionally filtered and sorted by salary",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_saved",
		Description: "Delete saved vacancies with the given URL",
	}, s.handleDelete)
}

// handleSearch handles the search_vacancies tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	search := s.ports.Listings.SearchAndSave
	if input.DryRun {
		search = s.ports.Listings.Search
	}

	report, err := search(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	listings := report.Listings
	if listings == nil {
		listings = []domain.Listing{}
	}

	return nil, SearchOutput{
		Query:    report.Query,
		Found:    report.Found(),
		Added:    report.Added,
		Existing: report.Existing,
		Skipped:  report.Skipped,
		Listings: listings,
	}, nil
}

// handleList handles the list_saved tool invocation.
func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	if input.Top < 0 {
		return nil, ListOutput{}, fmt.Errorf("%w: top must not be negative", domain.ErrInvalidInput)
	}

	listings, err := s.ports.Listings.Saved(ctx, input.Filter)
	if err != nil {
		return nil, ListOutput{}, err
	}

	switch input.Sort {
	case "":
	case sortSalaryAsc:
		domain.SortBySalary(listings, false)
	case sortSalaryDesc:
		domain.SortBySalary(listings, true)
	default:
		return nil, ListOutput{}, fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidInput, input.Sort)
	}

	if input.Top > 0 && len(listings) > input.Top {
		listings = listings[:input.Top]
	}
	if listings == nil {
		listings = []domain.Listing{}
	}

	return nil, ListOutput{Listings: listings, Count: len(listings)}, nil
}

// handleDelete handles the delete_saved tool invocation.
func (s *Server) handleDelete(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteInput,
) (*mcp.CallToolResult, DeleteOutput, error) {
	removed, err := s.ports.Listings.DeleteByURL(ctx, input.URL)
	if err != nil {
		return nil, DeleteOutput{}, err
	}
	return nil, DeleteOutput{URL: input.URL, Removed: removed}, nil
}
