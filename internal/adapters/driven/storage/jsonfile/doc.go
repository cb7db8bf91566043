// Package jsonfile provides the flat-file implementation of driven.ListingStore.
//
// Listings are kept as a single JSON array of objects with the keys name,
// url, description, salary and company_name, indented by four spaces and
// without escaping non-ASCII or HTML characters. The whole document is the
// unit of read and write.
//
// # Failure Semantics
//
// Reads are tolerant: a missing file or content that is not a listing array
// reads as an empty store. Write failures are returned to the caller.
//
// # Concurrency
//
// A mutex serialises operations within one process. Concurrent writers in
// other processes are not coordinated and can lose updates.
package jsonfile
