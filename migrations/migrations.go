// Package migrations embeds the SQL schema so the server binary can apply it
// on startup without shipping loose files.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
