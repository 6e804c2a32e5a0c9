package utils

import (
	"fmt"
	"strconv"

	"github.com/ether/builder-revisions/lib/db"
	"github.com/ether/builder-revisions/lib/settings"
	"go.uber.org/zap"
)

// GetDB opens the configured store. SQL stores are migrated before they are
// returned.
func GetDB(retrievedSettings settings.Settings, setupLogger *zap.SugaredLogger) (db.DataStore, error) {
	dbSettings := retrievedSettings.DBSettings
	if !retrievedSettings.DBType.Persistent() {
		setupLogger.Warnw("documents and revisions are kept in memory and lost on restart", "dbType", retrievedSettings.DBType)
	}

	switch retrievedSettings.DBType {
	case settings.SQLITE:
		setupLogger.Infow("opening database", "dbType", retrievedSettings.DBType, "file", dbSettings.Filename)
		return db.NewSQLiteDB(dbSettings.Filename, setupLogger)
	case settings.POSTGRES:
		setupLogger.Infow("opening database", "dbType", retrievedSettings.DBType, "host", dbSettings.Host, "database", dbSettings.Database)
		port, err := strconv.Atoi(dbSettings.Port)
		if err != nil {
			return nil, fmt.Errorf("invalid postgres port %q: %w", dbSettings.Port, err)
		}
		return db.NewPostgresDB(db.PostgresOptions{
			Username: dbSettings.User,
			Password: dbSettings.Password,
			Host:     dbSettings.Host,
			Database: dbSettings.Database,
			Port:     port,
		}, setupLogger)
	case settings.MEMORY:
		return db.NewMemoryDataStore(), nil
	}
	return nil, fmt.Errorf("unsupported database type %q", retrievedSettings.DBType)
}
