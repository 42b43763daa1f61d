package migrations

import "embed"

// FS holds the SQL migration files for the promotion schema, read by the
// golang-migrate iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate targets. Bump it together with
// every new migration pair added here.
const Version = 1
