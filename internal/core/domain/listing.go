package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Sentinel values used when a remote record omits a field.
const (
	NameNotSpecified   = "Not specified"
	DescriptionMissing = "No description"
	CompanyUnknown     = "Unknown"
)

// Listing is a normalised job posting.
// The JSON tags define the flat record shape of the store file.
type Listing struct {
	// Name is the job title.
	Name string `json:"name"`

	// URL is the public posting URL and the identity key within a store.
	URL string `json:"url"`

	// Description joins the requirement and responsibility snippets.
	Description string `json:"description"`

	// Salary is a single monetary value, 0 when the source gives none.
	Salary float64 `json:"salary"`

	// CompanyName is the employer's display name.
	CompanyName string `json:"company_name"`
}

// Equal reports whether two listings describe the same posting.
// Description does not take part in equality.
func (l Listing) Equal(other Listing) bool {
	return l.Name == other.Name &&
		l.URL == other.URL &&
		l.CompanyName == other.CompanyName &&
		l.Salary == other.Salary
}

// Less orders listings by salary, ascending.
func (l Listing) Less(other Listing) bool {
	return l.Salary < other.Salary
}

// CompareTo compares l with an arbitrary value by salary.
// It returns -1, 0 or +1, or ErrTypeMismatch when other is not a Listing.
func (l Listing) CompareTo(other any) (int, error) {
	var o Listing
	switch v := other.(type) {
	case Listing:
		o = v
	case *Listing:
		if v == nil {
			return 0, fmt.Errorf("%w: nil *Listing", ErrTypeMismatch)
		}
		o = *v
	default:
		return 0, fmt.Errorf("%w: cannot compare Listing with %T", ErrTypeMismatch, other)
	}

	switch {
	case l.Salary < o.Salary:
		return -1, nil
	case l.Salary > o.Salary:
		return 1, nil
	default:
		return 0, nil
	}
}

// Matches reports whether filter occurs, case-insensitively, in the name,
// description or company name. An empty filter matches everything.
func (l Listing) Matches(filter string) bool {
	if filter == "" {
		return true
	}
	q := strings.ToLower(filter)
	return strings.Contains(strings.ToLower(l.Name), q) ||
		strings.Contains(strings.ToLower(l.Description), q) ||
		strings.Contains(strings.ToLower(l.CompanyName), q)
}

// String implements fmt.Stringer.
func (l Listing) String() string {
	return fmt.Sprintf("%s (%s) - %s", l.Name, l.CompanyName, l.URL)
}

// FilterListings returns the listings matching filter, preserving order.
func FilterListings(listings []Listing, filter string) []Listing {
	if filter == "" {
		return listings
	}
	result := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if l.Matches(filter) {
			result = append(result, l)
		}
	}
	return result
}

// SortBySalary sorts listings in place by salary. The sort is stable so
// equal salaries keep their stored order.
func SortBySalary(listings []Listing, descending bool) {
	sort.SliceStable(listings, func(i, j int) bool {
		if descending {
			return listings[j].Less(listings[i])
		}
		return listings[i].Less(listings[j])
	})
}
