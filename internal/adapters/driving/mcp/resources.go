package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/tavern/internal/core/domain"
	"github.com/custodia-labs/tavern/internal/render"
)

// uriScheme is the custom URI scheme for Tavern resources.
const uriScheme = "tavern://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "saved",
		Name:        "saved",
		Description: "All saved vacancies",
		MIMEType:    "application/json",
	}, s.handleSavedResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "report",
		Name:        "report",
		Description: "All saved vacancies as a readable report",
		MIMEType:    "text/plain",
	}, s.handleReportResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "saved/{filter}",
		Name:        "saved-filtered",
		Description: "Saved vacancies whose name, description or company contain the filter",
		MIMEType:    "application/json",
	}, s.handleSavedResource)
}

// handleSavedResource returns saved listings as JSON, filtered when the
// URI carries a filter segment.
func (s *Server) handleSavedResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	filter, ok := extractFilter(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	listings, err := s.ports.Listings.Saved(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("loading saved listings: %w", err)
	}
	if listings == nil {
		listings = []domain.Listing{}
	}

	data, err := json.MarshalIndent(listings, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling listings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleReportResource renders every saved listing as plain text.
func (s *Server) handleReportResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	listings, err := s.ports.Listings.Saved(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("loading saved listings: %w", err)
	}

	var buf bytes.Buffer
	if len(listings) == 0 {
		buf.WriteString("No saved vacancies yet.\n")
	} else {
		fmt.Fprintf(&buf, "%d saved vacancies.\n%s\n", len(listings), render.Separator)
		render.Listings(&buf, listings)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     buf.String(),
		}},
	}, nil
}

// extractFilter extracts the filter from tavern://saved or
// tavern://saved/{filter}. The filter segment is path-unescaped.
func extractFilter(uri string) (string, bool) {
	const base = uriScheme + "saved"

	if uri == base {
		return "", true
	}
	if !strings.HasPrefix(uri, base+"/") {
		return "", false
	}

	filter, err := url.PathUnescape(strings.TrimPrefix(uri, base+"/"))
	if err != nil {
		return "", false
	}
	return filter, true
}
