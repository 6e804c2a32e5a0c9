package session

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const userIDKey = "user_id"

// CurrentUserID returns the user the host's login flow stored in the session,
// zero when nobody is logged in.
func CurrentUserID(store *session.Store, c *fiber.Ctx) (int64, error) {
	sess, err := store.Get(c)
	if err != nil {
		return 0, err
	}

	switch id := sess.Get(userIDKey).(type) {
	case int64:
		return id, nil
	case int:
		return int64(id), nil
	default:
		return 0, nil
	}
}

func SetCurrentUserID(store *session.Store, c *fiber.Ctx, userID int64) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(userIDKey, userID)
	return sess.Save()
}
