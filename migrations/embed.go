// Package migrations holds the SQL schema of the reporting database. The
// statements stay within the subset shared by PostgreSQL and SQLite.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
