// Package sqlite provides a SQLite-backed implementation of driven.ListingStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It is an alternative to the JSON file
// store for users who prefer a database file; both honour the same contract.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory as numbered .up.sql files, applied in order and
// recorded in schema_migrations.
// The url column is unique, so duplicates cannot be stored.
//
// # Filtering
//
// Filters are applied in Go with domain.Listing.Matches rather than with SQL
// LIKE, because SQLite's lower() only folds ASCII.
package sqlite
