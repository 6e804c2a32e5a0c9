package settings

import (
	"fmt"
	"slices"
	"strings"
)

type IDBType string

const (
	SQLITE   IDBType = "sqlite"
	POSTGRES IDBType = "postgres"
	MEMORY   IDBType = "memory"
)

var supportedDBTypes = []IDBType{SQLITE, POSTGRES, MEMORY}

// ParseDBType accepts the supported names in any case.
func ParseDBType(s string) (IDBType, error) {
	dbType := IDBType(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(supportedDBTypes, dbType) {
		return "", fmt.Errorf("unknown DB type %q, expected one of %v", s, supportedDBTypes)
	}
	return dbType, nil
}

// Persistent reports whether documents and revisions survive a restart.
func (dbType IDBType) Persistent() bool {
	return dbType != MEMORY
}

func (dbType IDBType) String() string {
	return string(dbType)
}
