package migrations

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

// Migration is one schema step. Released versions never change.
type Migration struct {
	Version     int
	Description string
	Up          func(db *sql.DB, dialect Dialect) error
}

type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

func (d Dialect) String() string {
	if d == DialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

func (d Dialect) placeholders() sq.PlaceholderFormat {
	if d == DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

const schemaMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	description TEXT,
	applied_at BIGINT
)`

// MigrationManager records applied versions in schema_migrations.
type MigrationManager struct {
	db         *sql.DB
	dialect    Dialect
	builder    sq.StatementBuilderType
	migrations []Migration
	logger     *zap.SugaredLogger
}

func NewMigrationManager(db *sql.DB, dialect Dialect, logger *zap.SugaredLogger) *MigrationManager {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	steps := GetMigrations()
	sort.Slice(steps, func(i, j int) bool {
		return steps[i].Version < steps[j].Version
	})

	return &MigrationManager{
		db:         db,
		dialect:    dialect,
		builder:    sq.StatementBuilder.PlaceholderFormat(dialect.placeholders()),
		migrations: steps,
		logger:     logger,
	}
}

// Run applies every migration newer than the recorded version, oldest first.
func (m *MigrationManager) Run() error {
	if _, err := m.db.Exec(schemaMigrationsTable); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	current, err := m.CurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, migration := range m.migrations {
		if migration.Version <= current {
			continue
		}
		m.logger.Infow("applying migration",
			"version", migration.Version,
			"description", migration.Description,
			"dialect", m.dialect,
		)
		if err := migration.Up(m.db, m.dialect); err != nil {
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}
		if err := m.record(migration); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}
		current = migration.Version
	}

	m.logger.Debugw("schema is up to date", "version", current)
	return nil
}

// CurrentVersion is the newest applied version, 0 on an empty database.
func (m *MigrationManager) CurrentVersion() (int, error) {
	query, args, err := m.builder.
		Select("COALESCE(MAX(version), 0)").
		From("schema_migrations").
		ToSql()
	if err != nil {
		return 0, err
	}

	var version int
	if err := m.db.QueryRow(query, args...).Scan(&version); err != nil {
		return 0, err
	}
	return version, nil
}

func (m *MigrationManager) record(migration Migration) error {
	query, args, err := m.builder.
		Insert("schema_migrations").
		Columns("version", "description", "applied_at").
		Values(migration.Version, migration.Description, time.Now().UnixMilli()).
		ToSql()
	if err != nil {
		return err
	}

	_, err = m.db.Exec(query, args...)
	return err
}
