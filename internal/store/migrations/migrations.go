// Package migrations embeds the goose migrations that create the kv table
// for each SQL dialect.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS
