package jsonfile

import (
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/tavern/internal/core/domain"
)

// record is one element of the store document. Elements read from disk keep
// their original bytes so unknown keys and unreadable elements survive a
// rewrite untouched.
type record struct {
	listing domain.Listing
	raw     json.RawMessage
	valid   bool
}

// value returns what write should encode for the record.
func (r record) value() any {
	if r.raw != nil {
		return r.raw
	}
	return r.listing
}

func fromListing(l domain.Listing) record {
	return record{listing: l, valid: true}
}

// rehydrate turns one stored element back into a Listing. Missing or null
// fields take their zero value; a field of the wrong type makes the element
// malformed.
func rehydrate(raw json.RawMessage) (domain.Listing, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return domain.Listing{}, fmt.Errorf("%w: element is not an object", domain.ErrMalformedRecord)
	}

	var (
		l   domain.Listing
		err error
	)
	if l.Name, err = stringField(fields, "name"); err != nil {
		return domain.Listing{}, err
	}
	if l.URL, err = stringField(fields, "url"); err != nil {
		return domain.Listing{}, err
	}
	if l.Description, err = stringField(fields, "description"); err != nil {
		return domain.Listing{}, err
	}
	if l.CompanyName, err = stringField(fields, "company_name"); err != nil {
		return domain.Listing{}, err
	}

	switch v := fields["salary"].(type) {
	case nil:
	case float64:
		l.Salary = v
	default:
		return domain.Listing{}, fmt.Errorf("%w: salary of type %T", domain.ErrMalformedRecord, v)
	}
	return l, nil
}

func stringField(fields map[string]any, key string) (string, error) {
	switch v := fields[key].(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %s of type %T", domain.ErrMalformedRecord, key, v)
	}
}

// listingsOf returns the listings of the readable records, in order.
func listingsOf(records []record) []domain.Listing {
	listings := make([]domain.Listing, 0, len(records))
	for _, r := range records {
		if r.valid {
			listings = append(listings, r.listing)
		}
	}
	return listings
}
