package api

import (
	"github.com/ether/builder-revisions/lib"
	"github.com/ether/builder-revisions/lib/api/ajax"
	"github.com/ether/builder-revisions/lib/api/author"
	"github.com/ether/builder-revisions/lib/api/editor"
	"github.com/ether/builder-revisions/lib/api/static"
	"github.com/ether/builder-revisions/lib/api/stats"
	"github.com/ether/builder-revisions/lib/request"
	"github.com/ether/builder-revisions/lib/session"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/text/language"
)

func InitAPI(store *lib.InitStore) {
	store.C.Use(recover.New())
	store.C.Use(RequestState(store))

	ajax.Init(store)
	author.Init(store)
	editor.Init(store)
	static.Init(store)
	stats.Init(store)
}

// RequestState attaches a fresh request.State carrying the logged in user and
// the request locale to the user context of every request.
func RequestState(store *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := session.CurrentUserID(store.CookieStore, c)
		if err != nil {
			store.Logger.Warnw("could not read session", "error", err)
			userID = 0
		}

		state := request.NewState(0, userID)
		state.SetLocale(RequestLocale(c, store.RetrievedSettings.Revisions.DefaultLocale))
		c.SetUserContext(request.WithState(c.UserContext(), state))
		return c.Next()
	}
}

// RequestLocale prefers the locale query parameter over the first
// Accept-Language entry.
func RequestLocale(c *fiber.Ctx, fallback string) string {
	if locale := c.Query("locale"); locale != "" {
		if tag, err := language.Parse(locale); err == nil {
			base, _ := tag.Base()
			return base.String()
		}
	}

	tags, _, err := language.ParseAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
	if err != nil || len(tags) == 0 {
		return fallback
	}
	base, confidence := tags[0].Base()
	if confidence == language.No {
		return fallback
	}
	return base.String()
}
