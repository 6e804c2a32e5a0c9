package db

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ether/builder-revisions/lib/db/migrations"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type PostgresOptions struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
}

type PostgresDB struct {
	sqlDataStore
	options PostgresOptions
}

func NewPostgresDB(options PostgresOptions, logger *zap.SugaredLogger) (*PostgresDB, error) {
	dbUrl := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", options.Username, options.Password, options.Host, options.Port, options.Database)
	sqlDb, err := sql.Open("postgres", dbUrl)
	if err != nil {
		return nil, err
	}

	migrationManager := migrations.NewMigrationManager(sqlDb, migrations.DialectPostgres, logger)
	if err := migrationManager.Run(); err != nil {
		sqlDb.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &PostgresDB{
		sqlDataStore: sqlDataStore{
			sqlDB:   sqlDb,
			builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		},
		options: options,
	}, nil
}

var _ DataStore = (*PostgresDB)(nil)
