package migrations

import (
	"database/sql"
)

// migration002FiberSessions creates the fiber_sessions table backing the
// editor session store
func migration002FiberSessions() Migration {
	return Migration{
		Version:     2,
		Description: "Create fiber_sessions table for Fiber session storage",
		Up: func(db *sql.DB, dialect Dialect) error {
			var query string

			switch dialect {
			case DialectPostgres:
				query = `CREATE TABLE IF NOT EXISTS fiber_sessions (
					session_key TEXT PRIMARY KEY,
					session_data BYTEA,
					expires_at BIGINT
				)`
			default: // SQLite
				query = `CREATE TABLE IF NOT EXISTS fiber_sessions (
					session_key TEXT PRIMARY KEY,
					session_data BLOB,
					expires_at INTEGER
				)`
			}

			if _, err := db.Exec(query); err != nil {
				return err
			}

			_, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_fiber_sessions_expires ON fiber_sessions (expires_at)`)
			return err
		},
	}
}
