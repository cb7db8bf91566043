// Package hh provides the listing source for the HeadHunter (hh.ru) API.
//
// The connector runs a single-page vacancy search (per_page=10, page=0) and
// returns each item as untouched JSON for the hh normaliser. Requests are
// throttled by a token bucket and can carry an optional OAuth bearer token.
//
// Any failure to obtain a 2xx response wraps domain.ErrTransport. Failed
// requests are never retried.
package hh
