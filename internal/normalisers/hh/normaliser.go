package hh

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/custodia-labs/tavern/internal/core/domain"
	"github.com/custodia-labs/tavern/internal/core/ports/driven"
	"github.com/custodia-labs/tavern/internal/logger"
)

// SourceType is the source identifier this normaliser handles.
const SourceType = "hh"

// descriptionSeparator joins the requirement and responsibility snippets.
const descriptionSeparator = ". "

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser converts hh.ru vacancy items into listings.
type Normaliser struct{}

// New creates a new hh.ru normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SourceType returns the source type whose records this normaliser reads.
func (n *Normaliser) SourceType() string {
	return SourceType
}

// Normalise converts a single vacancy item.
func (n *Normaliser) Normalise(_ context.Context, raw domain.RawListing) (domain.Listing, error) {
	var item map[string]any
	if err := json.Unmarshal(raw.Content, &item); err != nil {
		return domain.Listing{}, fmt.Errorf("%w: %w", domain.ErrMalformedRecord, err)
	}
	if item == nil {
		return domain.Listing{}, fmt.Errorf("%w: record is null", domain.ErrMalformedRecord)
	}
	return FromItem(item)
}

// NormaliseMany converts every item it can. A failing item is logged and
// recorded in the batch; the remaining items are still converted.
func (n *Normaliser) NormaliseMany(ctx context.Context, raws []domain.RawListing) driven.Batch {
	batch := driven.Batch{Listings: make([]domain.Listing, 0, len(raws))}

	for i, raw := range raws {
		listing, err := n.Normalise(ctx, raw)
		if err != nil {
			logger.Warn("skipping record %d: %v", i, err)
			batch.Failures = append(batch.Failures, driven.RecordFailure{Index: i, Err: err})
			continue
		}
		batch.Listings = append(batch.Listings, listing)
	}

	logger.Debug("normalised %d of %d records", len(batch.Listings), len(raws))
	return batch
}

// FromItem builds a listing from a decoded vacancy item.
func FromItem(item map[string]any) (domain.Listing, error) {
	name, err := stringField(item, "name", domain.NameNotSpecified)
	if err != nil {
		return domain.Listing{}, err
	}

	url, err := stringField(item, "alternate_url", "")
	if err != nil {
		return domain.Listing{}, err
	}

	description, err := describe(item)
	if err != nil {
		return domain.Listing{}, err
	}

	salary, err := Salary(item["salary"])
	if err != nil {
		return domain.Listing{}, err
	}

	company := domain.CompanyUnknown
	if employer, ok, err := objectField(item, "employer"); err != nil {
		return domain.Listing{}, err
	} else if ok {
		company, err = stringField(employer, "name", domain.CompanyUnknown)
		if err != nil {
			return domain.Listing{}, fmt.Errorf("employer: %w", err)
		}
	}

	return domain.Listing{
		Name:        name,
		URL:         url,
		Description: description,
		Salary:      salary,
		CompanyName: company,
	}, nil
}

func describe(item map[string]any) (string, error) {
	snippet, ok, err := objectField(item, "snippet")
	if err != nil || !ok {
		return domain.DescriptionMissing, err
	}

	var parts []string
	for _, key := range []string{"requirement", "responsibility"} {
		text, err := stringField(snippet, key, "")
		if err != nil {
			return "", fmt.Errorf("snippet: %w", err)
		}
		if text != "" {
			parts = append(parts, text)
		}
	}

	if len(parts) == 0 {
		return domain.DescriptionMissing, nil
	}
	return strings.Join(parts, descriptionSeparator), nil
}

// stringField returns item[key], or def when the key is absent or null.
func stringField(item map[string]any, key, def string) (string, error) {
	v, ok := item[key]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s of type %T", domain.ErrMalformedRecord, key, v)
	}
	return s, nil
}

// objectField returns the nested object under key. An absent key is not an
// error; a null or non-object value is.
func objectField(item map[string]any, key string) (map[string]any, bool, error) {
	v, ok := item[key]
	if !ok {
		return nil, false, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false, fmt.Errorf("%w: %s of type %T", domain.ErrMalformedRecord, key, v)
	}
	return m, true, nil
}
