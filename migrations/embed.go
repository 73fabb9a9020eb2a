// Package migrations embeds the goose SQL migrations so that the server,
// the migrate command and integration tests share one schema source.
package migrations

import "embed"

// FS holds the *.sql migration files.
//
//go:embed *.sql
var FS embed.FS
