// Package migrations embeds the SQLite schema of the contact store.
package migrations

import "embed"

// FS holds the ordered *.sql schema files.
//
//go:embed *.sql
var FS embed.FS
