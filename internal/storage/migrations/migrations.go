// Package migrations embeds the goose SQL migrations for the Origami
// database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
