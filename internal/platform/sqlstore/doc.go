// Package sqlstore implements the store interfaces on database/sql.
//
// The same queries run unchanged on PostgreSQL through the pgx stdlib driver
// and on SQLite through mattn/go-sqlite3: placeholders use the $N form,
// generated identities come back through RETURNING, and driver-specific
// constraint failures are translated by MapError. The schema itself lives in
// internal/platform/migrations.
package sqlstore
