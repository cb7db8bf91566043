package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/tavern/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/tavern/internal/core/domain"
	"github.com/custodia-labs/tavern/internal/core/ports/driven"
)

// DefaultFileName is the database file used when no path is configured.
const DefaultFileName = "vacancies.db"

// Ensure Store implements the interface.
var _ driven.ListingStore = (*Store)(nil)

// Store is a ListingStore backed by a SQLite database file.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the database at path and runs migrations.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = DefaultFileName
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: path,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_listings.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if err := s.apply(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) apply(version int, stmt string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(stmt); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// Add inserts listing unless its URL is already stored.
func (s *Store) Add(ctx context.Context, listing domain.Listing) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO listings (url, name, description, salary, company_name)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO NOTHING
	`, listing.URL, listing.Name, listing.Description, listing.Salary, listing.CompanyName)
	if err != nil {
		return fmt.Errorf("inserting listing: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("inserting listing: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("listing %q: %w", listing.URL, domain.ErrAlreadyExists)
	}
	return nil
}

// Query returns stored listings matching filter, in insertion order.
func (s *Store) Query(ctx context.Context, filter string) ([]domain.Listing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, url, description, salary, company_name
		FROM listings ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	listings := []domain.Listing{}
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(&l.Name, &l.URL, &l.Description, &l.Salary, &l.CompanyName); err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		if l.Matches(filter) {
			listings = append(listings, l)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating listings: %w", err)
	}

	return listings, nil
}

// Delete removes the listing with the same URL as listing.
func (s *Store) Delete(ctx context.Context, listing domain.Listing) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM listings WHERE url = ?", listing.URL)
	if err != nil {
		return false, fmt.Errorf("deleting listing: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting listing: %w", err)
	}
	return n > 0, nil
}
