// Package migrations embeds the goose schema migrations of the relational
// store, one directory per SQL dialect.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS
