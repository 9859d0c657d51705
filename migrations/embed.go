// Package migrations embeds the catalog schema migrations (destinations,
// activities, accommodation types, transport options, hotels) so goose can
// apply them from the binary itself — at server bootstrap and in tests.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time. Pass this to
// goose.NewProvider; the schema then always matches the code that shipped
// with it, no migration files on disk required.
//
//go:embed *.sql
var FS embed.FS
