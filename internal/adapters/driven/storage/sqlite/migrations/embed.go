// Package migrations embeds the SQL migrations of the listings database.
package migrations

import "embed"

// FS contains the numbered *.up.sql files.
//
//go:embed *.up.sql
var FS embed.FS
