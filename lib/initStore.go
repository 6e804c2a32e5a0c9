package lib

import (
	"github.com/ether/builder-revisions/lib/author"
	"github.com/ether/builder-revisions/lib/css"
	"github.com/ether/builder-revisions/lib/db"
	"github.com/ether/builder-revisions/lib/document"
	"github.com/ether/builder-revisions/lib/hooks"
	"github.com/ether/builder-revisions/lib/revisions"
	"github.com/ether/builder-revisions/lib/security"
	"github.com/ether/builder-revisions/lib/settings"
	"github.com/ether/builder-revisions/lib/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type InitStore struct {
	C                 *fiber.App
	RetrievedSettings *settings.Settings
	CookieStore       *session.Store
	Store             db.DataStore
	Validator         *validator.Validate
	Logger            *zap.SugaredLogger
	Hooks             *hooks.Hook
	Documents         *document.Manager
	Revisions         *revisions.Manager
	Nonces            *security.NonceManager
	AuthorManager     *author.Manager
	Translator        *utils.Translator
	CSS               *css.Updater
	Files             afero.Fs
}
