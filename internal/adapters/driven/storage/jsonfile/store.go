package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/tavern/internal/core/domain"
	"github.com/custodia-labs/tavern/internal/core/ports/driven"
	"github.com/custodia-labs/tavern/internal/logger"
)

// DefaultFileName is the store file used when no path is configured.
const DefaultFileName = "vacancies.json"

// indent is the per-level indentation of the store document.
const indent = "    "

// filePerm is the permission of a newly written store file.
const filePerm = 0o644

// Ensure Store implements the interface.
var _ driven.ListingStore = (*Store)(nil)

// Store is a ListingStore backed by a single JSON document.
// Every operation reads the whole file and every change rewrites it.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store at path. An empty path means DefaultFileName
// in the working directory. The file is not touched until the first write.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFileName
	}
	return &Store{path: path}
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// ReadAll loads every readable stored listing. A missing or unparsable
// file reads as an empty store; unreadable elements are skipped.
func (s *Store) ReadAll(_ context.Context) []domain.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return listingsOf(s.read())
}

// WriteAll replaces the whole document with listings.
func (s *Store) WriteAll(_ context.Context, listings []domain.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]record, 0, len(listings))
	for _, l := range listings {
		records = append(records, fromListing(l))
	}
	return s.write(records)
}

// Add appends listing unless its URL is already stored.
func (s *Store) Add(_ context.Context, listing domain.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.read()
	for _, r := range records {
		if r.valid && r.listing.URL == listing.URL {
			logger.Debug("listing %q already stored", listing.Name)
			return fmt.Errorf("listing %q: %w", listing.URL, domain.ErrAlreadyExists)
		}
	}

	if err := s.write(append(records, fromListing(listing))); err != nil {
		return err
	}
	logger.Debug("listing %q added", listing.Name)
	return nil
}

// Query returns the stored listings matching filter.
func (s *Store) Query(_ context.Context, filter string) ([]domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.FilterListings(listingsOf(s.read()), filter), nil
}

// Delete removes every listing with the same URL as listing.
// Unreadable elements are kept. The file is only rewritten when something
// was removed.
func (s *Store) Delete(_ context.Context, listing domain.Listing) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.read()
	kept := make([]record, 0, len(records))
	for _, r := range records {
		if r.valid && r.listing.URL == listing.URL {
			continue
		}
		kept = append(kept, r)
	}

	if len(kept) == len(records) {
		return false, nil
	}
	if err := s.write(kept); err != nil {
		return false, err
	}
	return true, nil
}

// read loads the document element by element (caller must hold lock).
func (s *Store) read() []record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("reading store %s: %v", s.path, err)
		}
		return nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		logger.Warn("store %s is not a listing array, treating as empty: %v", s.path, err)
		return nil
	}

	records := make([]record, 0, len(elements))
	for i, raw := range elements {
		listing, err := rehydrate(raw)
		if err != nil {
			logger.Warn("store %s: keeping unreadable element %d: %v", s.path, i, err)
		}
		records = append(records, record{listing: listing, raw: raw, valid: err == nil})
	}
	return records
}

// write replaces the document through a temp file and rename
// (caller must hold lock).
func (s *Store) write(records []record) error {
	values := make([]any, 0, len(records))
	for _, r := range records {
		values = append(values, r.value())
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(values); err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("write store: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // no-op once renamed

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}
