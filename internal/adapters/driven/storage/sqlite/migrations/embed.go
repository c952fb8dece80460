// Package migrations embeds the schema migrations of the compilation database.
package migrations

import "embed"

// FS holds the numbered up and down migrations.
//
//go:embed *.sql
var FS embed.FS
