package session

import (
	"time"

	"github.com/ether/builder-revisions/lib/db"
	"github.com/gofiber/fiber/v2"
)

// Database persists fiber sessions through the configured DataStore.
type Database struct {
	store db.SessionMethods
}

func NewSessionDatabase(store db.SessionMethods) *Database {
	return &Database{store: store}
}

func (s *Database) Get(key string) ([]byte, error) {
	return s.store.GetFiberSession(key)
}

// Set stores val until exp has passed. A zero exp keeps it until it is
// deleted.
func (s *Database) Set(key string, val []byte, exp time.Duration) error {
	var expiresAt int64
	if exp > 0 {
		expiresAt = time.Now().Add(exp).Unix()
	}
	return s.store.SetFiberSession(key, val, expiresAt)
}

func (s *Database) Delete(key string) error {
	return s.store.DeleteFiberSession(key)
}

// DeleteExpired drops sessions past their expiry. Get already ignores them.
func (s *Database) DeleteExpired() error {
	return s.store.CleanupExpiredFiberSessions()
}

func (s *Database) Reset() error {
	return s.store.ResetFiberSessions()
}

func (s *Database) Close() error {
	return nil
}

var _ fiber.Storage = (*Database)(nil)
