// Package migrations stores forward-only SQL migrations embedded into the binary.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
