// Package migrations embeds the schema for the client-local state database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
