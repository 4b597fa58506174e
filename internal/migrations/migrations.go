// Package migrations embeds the SQL migrations of the local session
// database, applied with goose at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
