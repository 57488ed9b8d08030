// Package migrations embeds the SQL migration files for the sync server's
// database so goose can apply them at server bootstrap and in tests.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time, so the
// schema ships inside the binary and never drifts from the running code.
//
//go:embed *.sql
var FS embed.FS
