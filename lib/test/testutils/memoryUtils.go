package testutils

import (
	"context"
	"net/http/httptest"
	"strconv"
	"testing"
	"testing/fstest"

	"github.com/ether/builder-revisions/lib"
	"github.com/ether/builder-revisions/lib/db"
	"github.com/ether/builder-revisions/lib/revisions"
	"github.com/ether/builder-revisions/lib/server"
	"github.com/ether/builder-revisions/lib/session"
	"github.com/ether/builder-revisions/lib/settings"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const loginRoute = "/test/login/"

var Locales = fstest.MapFS{
	"assets/locales/en.json": {Data: []byte(`{
		"revisions.revision_history": "Revision History",
		"revisions.revision": "Revision"
	}`)},
	"assets/locales/de.json": {Data: []byte(`{
		"revisions.revision_history": "Revisionsverlauf",
		"revisions.revision": "Revision"
	}`)},
}

// MemoryUtils is a fully wired service on top of the in-memory data store.
type MemoryUtils struct {
	*lib.InitStore
	DB *db.MemoryDataStore
}

func TestSettings() *settings.Settings {
	return &settings.Settings{
		IP:         "127.0.0.1",
		Port:       "9001",
		LogLevel:   "debug",
		DBType:     settings.MEMORY,
		DBSettings: &settings.DBSettings{},
		Revisions: settings.Revisions{
			Keep:          -1,
			MaxToDisplay:  100,
			BuilderTypes:  []string{"post", "page"},
			AjaxEnabled:   true,
			DefaultLocale: "en",
		},
		CSS: settings.CSS{
			UploadDir: "uploads",
		},
		Nonce: settings.Nonce{
			Secret:   "test-secret",
			Lifetime: 3600,
		},
		Cookie: settings.Cookie{
			SameSite:        "lax",
			SessionLifetime: 3600000,
		},
		EnableMetrics: true,
		GitVersion:    "test",
	}
}

func InitMemoryUtils() MemoryUtils {
	return InitMemoryUtilsWithSettings(TestSettings())
}

func InitMemoryUtilsWithSettings(retrievedSettings *settings.Settings) MemoryUtils {
	memoryDB := db.NewMemoryDataStore()
	store := server.Build(context.Background(), retrievedSettings, memoryDB, zap.NewNop().Sugar(), Locales, afero.NewMemMapFs())

	store.C.Post(loginRoute+":id", func(c *fiber.Ctx) error {
		userID, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		if err := session.SetCurrentUserID(store.CookieStore, c, userID); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	return MemoryUtils{InitStore: store, DB: memoryDB}
}

// Login stores userID in a new session and returns the cookie header that
// authenticates later requests as that user.
func (m MemoryUtils) Login(t *testing.T, userID int64) string {
	t.Helper()

	req := httptest.NewRequest("POST", loginRoute+strconv.FormatInt(userID, 10), nil)
	resp, err := m.C.Test(req, 1000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "builder_sid" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("login did not set a session cookie")
	return ""
}

// Nonce issues a nonce for userID that the editor endpoints accept.
func (m MemoryUtils) Nonce(t *testing.T, userID int64) string {
	t.Helper()

	nonce, err := m.Nonces.Create(userID, revisions.NonceAction)
	require.NoError(t, err)
	return nonce
}
