package domain

import "fmt"

// StorageBackend selects the ListingStore implementation.
type StorageBackend string

// Available storage backends.
const (
	// StorageBackendJSON keeps listings in a single indented JSON file.
	StorageBackendJSON StorageBackend = "json"

	// StorageBackendSQLite keeps listings in a SQLite database file.
	StorageBackendSQLite StorageBackend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	return b == StorageBackendJSON || b == StorageBackendSQLite
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Defaults for Settings.
const (
	DefaultStorePath         = "vacancies.json"
	DefaultHHBaseURL         = "https://api.hh.ru/vacancies"
	DefaultRequestsPerSecond = 2.0
)

// Settings is the resolved application configuration.
type Settings struct {
	// Backend selects the listing store implementation.
	Backend StorageBackend

	// StorePath is the store file location.
	StorePath string

	// HHBaseURL is the HeadHunter vacancies endpoint.
	HHBaseURL string

	// UserAgent is sent with every API request. Empty means the client default.
	UserAgent string

	// AccessToken is an optional OAuth bearer token for the API.
	AccessToken string

	// RequestsPerSecond throttles outgoing API requests.
	RequestsPerSecond float64
}

// DefaultSettings returns settings with every default applied.
func DefaultSettings() Settings {
	return Settings{
		Backend:           StorageBackendJSON,
		StorePath:         DefaultStorePath,
		HHBaseURL:         DefaultHHBaseURL,
		RequestsPerSecond: DefaultRequestsPerSecond,
	}
}

// Validate checks the settings for values no adapter can work with.
func (s Settings) Validate() error {
	if !s.Backend.IsValid() {
		return fmt.Errorf("%w: storage backend %q", ErrUnsupportedType, s.Backend)
	}
	if s.StorePath == "" {
		return fmt.Errorf("%w: empty store path", ErrInvalidInput)
	}
	if s.HHBaseURL == "" {
		return fmt.Errorf("%w: empty API base URL", ErrInvalidInput)
	}
	if s.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: requests per second must be positive", ErrInvalidInput)
	}
	return nil
}
