package migrations

import "embed"

// FS embeds the SQL migration files in this directory. They are applied
// through the golang-migrate iofs driver on startup when migrations are
// enabled.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the application expects.
const Version = 1
