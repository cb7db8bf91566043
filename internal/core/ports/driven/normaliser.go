package driven

import (
	"context"

	"github.com/custodia-labs/tavern/internal/core/domain"
)

// Normaliser transforms raw records into listings.
type Normaliser interface {
	// SourceType returns the source type whose records this normaliser reads.
	SourceType() string

	// Normalise converts one raw record.
	// Records of an unexpected shape return domain.ErrMalformedRecord.
	Normalise(ctx context.Context, raw domain.RawListing) (domain.Listing, error)

	// NormaliseMany converts a batch, skipping records that fail.
	NormaliseMany(ctx context.Context, raws []domain.RawListing) Batch
}

// Batch is the outcome of normalising several raw records.
type Batch struct {
	// Listings holds every record that converted, in input order.
	Listings []domain.Listing

	// Failures holds one entry per skipped record.
	Failures []RecordFailure
}

// RecordFailure describes a raw record that could not be normalised.
type RecordFailure struct {
	// Index is the record's position in the input batch.
	Index int

	// Err is the reason, wrapping domain.ErrMalformedRecord.
	Err error
}
