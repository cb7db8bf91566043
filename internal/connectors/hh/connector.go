package hh

import (
	"context"
	"sync"

	"github.com/custodia-labs/tavern/internal/core/domain"
	"github.com/custodia-labs/tavern/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.ListingSource = (*Connector)(nil)

// Connector fetches vacancies from hh.ru.
type Connector struct {
	cfg Config

	mu     sync.Mutex
	client *Client
	closed bool
}

// New creates a connector. The HTTP client is built lazily on Connect or
// on the first Fetch.
func New(cfg Config) *Connector {
	return &Connector{cfg: cfg.withDefaults()}
}

// Type returns the source type identifier.
func (c *Connector) Type() string {
	return SourceType
}

// Connect builds the HTTP client. It performs no request.
func (c *Connector) Connect(ctx context.Context) error {
	_, err := c.ensureClient(ctx)
	return err
}

// Fetch searches hh.ru and returns one page of raw vacancy items.
func (c *Connector) Fetch(ctx context.Context, query string) (*domain.FetchResult, error) {
	client, err := c.ensureClient(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := client.SearchVacancies(ctx, query)
	if err != nil {
		return nil, err
	}

	result := &domain.FetchResult{
		Query: query,
		Found: resp.Found,
		Items: make([]domain.RawListing, 0, len(resp.Items)),
	}
	for i, item := range resp.Items {
		result.Items = append(result.Items, domain.RawListing{
			Source:  SourceType,
			Index:   i,
			Content: item,
		})
	}
	return result, nil
}

// Close releases resources.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.client = nil
	return nil
}

func (c *Connector) ensureClient(ctx context.Context) (*Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, domain.ErrSourceClosed
	}
	if c.client == nil {
		c.client = NewClient(ctx, c.cfg)
	}
	return c.client, nil
}
