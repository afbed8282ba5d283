// Package migrations embeds the ordered SQL migrations applied by goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
