package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFilter(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
		ok       bool
	}{
		{name: "all saved", uri: "tavern://saved", expected: "", ok: true},
		{name: "plain filter", uri: "tavern://saved/python", expected: "python", ok: true},
		{name: "escaped filter", uri: "tavern://saved/senior%20go", expected: "senior go", ok: true},
		{name: "bad escape", uri: "tavern://saved/%zz", ok: false},
		{name: "invalid prefix", uri: "file://saved/python", ok: false},
		{name: "similar prefix", uri: "tavern://savedx", ok: false},
		{name: "empty URI", uri: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, ok := extractFilter(tt.uri)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, filter)
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleSavedResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all saved listings", func(t *testing.T) {
		server := newTestServer(t, &mockListingService{listings: sampleListings()})

		result, err := server.handleSavedResource(ctx, makeReadResourceRequest("tavern://saved"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, `"company_name": "K&B"`)
		assert.Contains(t, result.Contents[0].Text, "Intern")
	})

	t.Run("applies filter from URI", func(t *testing.T) {
		svc := &mockListingService{listings: sampleListings()}
		server := newTestServer(t, svc)

		result, err := server.handleSavedResource(ctx, makeReadResourceRequest("tavern://saved/cashier"))

		require.NoError(t, err)
		assert.Equal(t, "cashier", svc.savedFilter)
		assert.Contains(t, result.Contents[0].Text, "Cashier")
		assert.NotContains(t, result.Contents[0].Text, "Intern")
	})

	t.Run("empty store gives empty array", func(t *testing.T) {
		server := newTestServer(t, &mockListingService{})

		result, err := server.handleSavedResource(ctx, makeReadResourceRequest("tavern://saved"))

		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("invalid URI returns not found", func(t *testing.T) {
		server := newTestServer(t, &mockListingService{})

		_, err := server.handleSavedResource(ctx, makeReadResourceRequest("tavern://invalid"))

		require.Error(t, err)
	})

	t.Run("returns error on load failure", func(t *testing.T) {
		server := newTestServer(t, &mockListingService{err: errors.New("corrupt file")})

		_, err := server.handleSavedResource(ctx, makeReadResourceRequest("tavern://saved"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading saved listings")
	})
}

func TestServer_handleReportResource(t *testing.T) {
	ctx := context.Background()

	t.Run("renders listings", func(t *testing.T) {
		server := newTestServer(t, &mockListingService{listings: sampleListings()})

		result, err := server.handleReportResource(ctx, makeReadResourceRequest("tavern://report"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		text := result.Contents[0].Text
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
		assert.Contains(t, text, "3 saved vacancies.")
		assert.Contains(t, text, "2. Name: Python Developer")
		assert.Contains(t, text, "Salary: 250,000 RUB")
		assert.Contains(t, text, "Salary: Salary not specified")
	})

	t.Run("empty store", func(t *testing.T) {
		server := newTestServer(t, &mockListingService{})

		result, err := server.handleReportResource(ctx, makeReadResourceRequest("tavern://report"))

		require.NoError(t, err)
		assert.Equal(t, "No saved vacancies yet.\n", result.Contents[0].Text)
	})
}
