package domain

// RawListing is a record as delivered by a listing source, before
// normalisation. Content holds the record's JSON encoding untouched.
type RawListing struct {
	// Source is the type of the source that produced the record (e.g. "hh").
	Source string

	// Index is the record's position within the fetched batch.
	Index int

	// Content is the raw JSON bytes of a single record.
	Content []byte
}

// FetchResult is the outcome of a single remote search.
type FetchResult struct {
	// Query is the free-text query sent to the source.
	Query string

	// Found is the total number of matches the source reports, if known.
	Found int

	// Items are the raw records of the fetched page.
	Items []RawListing
}
