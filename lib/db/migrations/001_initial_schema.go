package migrations

import (
	"database/sql"
)

// GetMigrations returns all available migrations
func GetMigrations() []Migration {
	return []Migration{
		migration001InitialSchema(),
		migration002FiberSessions(),
	}
}

// migration001InitialSchema creates posts, post meta and users
func migration001InitialSchema() Migration {
	return Migration{
		Version:     1,
		Description: "Initial schema - posts, postmeta and users",
		Up: func(db *sql.DB, dialect Dialect) error {
			var queries []string

			switch dialect {
			case DialectPostgres:
				queries = getPostgresInitialSchema()
			default:
				queries = getSQLiteInitialSchema()
			}

			for _, query := range queries {
				if _, err := db.Exec(query); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func getSQLiteInitialSchema() []string {
	return []string{
		// POSTS (documents and their revisions)
		`CREATE TABLE IF NOT EXISTS posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			post_type TEXT NOT NULL,
			post_status TEXT NOT NULL DEFAULT 'draft',
			post_name TEXT NOT NULL DEFAULT '',
			post_title TEXT NOT NULL DEFAULT '',
			post_content TEXT NOT NULL DEFAULT '',
			post_author INTEGER NOT NULL DEFAULT 0,
			post_parent INTEGER NOT NULL DEFAULT 0,
			modified INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_parent ON posts (post_parent, post_type, modified)`,

		// POST META
		`CREATE TABLE IF NOT EXISTS postmeta (
			post_id INTEGER NOT NULL,
			meta_key TEXT NOT NULL,
			meta_value TEXT,
			PRIMARY KEY (post_id, meta_key),
			FOREIGN KEY (post_id) REFERENCES posts(id) ON DELETE CASCADE
		)`,

		// USERS
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			login TEXT NOT NULL UNIQUE,
			display_name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT ''
		)`,
	}
}

func getPostgresInitialSchema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS posts (
			id BIGSERIAL PRIMARY KEY,
			post_type TEXT NOT NULL,
			post_status TEXT NOT NULL DEFAULT 'draft',
			post_name TEXT NOT NULL DEFAULT '',
			post_title TEXT NOT NULL DEFAULT '',
			post_content TEXT NOT NULL DEFAULT '',
			post_author BIGINT NOT NULL DEFAULT 0,
			post_parent BIGINT NOT NULL DEFAULT 0,
			modified BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_parent ON posts (post_parent, post_type, modified)`,

		`CREATE TABLE IF NOT EXISTS postmeta (
			post_id BIGINT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
			meta_key TEXT NOT NULL,
			meta_value TEXT,
			PRIMARY KEY (post_id, meta_key)
		)`,

		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			login TEXT NOT NULL UNIQUE,
			display_name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT ''
		)`,
	}
}
