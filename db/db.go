// Package db carries the schema migrations, embedded so the binaries need no
// migrations directory on disk at runtime.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
