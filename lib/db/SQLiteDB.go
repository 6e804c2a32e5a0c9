package db

import (
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/ether/builder-revisions/lib/db/migrations"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

type SQLiteDB struct {
	sqlDataStore
	path string
}

// NewSQLiteDB creates a new SQLiteDB and returns a pointer to it.
func NewSQLiteDB(path string, logger *zap.SugaredLogger) (*SQLiteDB, error) {
	if path == ":memory" || path == ":memory:" {
		path = "file::memory:?cache=shared"
	}

	sqlDb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if strings.Contains(path, ":memory:") {
		sqlDb.SetMaxOpenConns(1)
	}

	if _, err = sqlDb.Exec("PRAGMA journal_mode = WAL"); err != nil {
		sqlDb.Close()
		return nil, err
	}
	if _, err = sqlDb.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		sqlDb.Close()
		return nil, err
	}
	if _, err = sqlDb.Exec("PRAGMA foreign_keys = ON"); err != nil {
		sqlDb.Close()
		return nil, err
	}

	migrationManager := migrations.NewMigrationManager(sqlDb, migrations.DialectSQLite, logger)
	if err := migrationManager.Run(); err != nil {
		sqlDb.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteDB{
		sqlDataStore: sqlDataStore{
			sqlDB:   sqlDb,
			builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		},
		path: path,
	}, nil
}

var _ DataStore = (*SQLiteDB)(nil)
