package server

import (
	"context"
	"time"

	"github.com/ether/builder-revisions/lib/db"
	"go.uber.org/zap"
)

type SessionCleaner struct {
	logger *zap.SugaredLogger
	db     db.SessionMethods
}

func NewSessionCleaner(logger *zap.SugaredLogger, db db.SessionMethods) *SessionCleaner {
	return &SessionCleaner{
		logger: logger,
		db:     db,
	}
}

// StartSessionCleanup removes expired sessions once right away and then every
// interval until ctx is done.
func StartSessionCleanup(ctx context.Context, logger *zap.SugaredLogger, db db.SessionMethods, interval time.Duration) {
	sc := NewSessionCleaner(logger, db)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		sc.Sweep()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sc.Sweep()
			}
		}
	}()
}

func (sc *SessionCleaner) Sweep() bool {
	if err := sc.db.CleanupExpiredFiberSessions(); err != nil {
		sc.logger.Warnf("Failed to remove expired sessions: %v", err)
		return false
	}
	return true
}
