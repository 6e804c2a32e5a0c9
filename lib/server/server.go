package server

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	"github.com/ether/builder-revisions/lib"
	api2 "github.com/ether/builder-revisions/lib/api"
	"github.com/ether/builder-revisions/lib/author"
	"github.com/ether/builder-revisions/lib/css"
	"github.com/ether/builder-revisions/lib/db"
	"github.com/ether/builder-revisions/lib/document"
	"github.com/ether/builder-revisions/lib/hooks"
	"github.com/ether/builder-revisions/lib/posttype"
	"github.com/ether/builder-revisions/lib/revisions"
	"github.com/ether/builder-revisions/lib/security"
	session2 "github.com/ether/builder-revisions/lib/session"
	settings2 "github.com/ether/builder-revisions/lib/settings"
	"github.com/ether/builder-revisions/lib/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Build wires the managers of the service on top of dataStore and mounts the
// HTTP API on a new fiber app. The revision coordinator is registered before
// the init event fires.
func Build(ctx context.Context, settings *settings2.Settings, dataStore db.DataStore, setupLogger *zap.SugaredLogger, locales fs.FS, files afero.Fs) *lib.InitStore {
	retrievedHooks := hooks.NewHook()
	postTypes := posttype.NewRegistry()
	validatorEvaluator := validator.New(validator.WithRequiredStructEnabled())

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	cookieStore := session.New(session.Config{
		KeyLookup:      "cookie:builder_sid",
		Storage:        session2.NewSessionDatabase(dataStore),
		CookieSameSite: settings.Cookie.SameSite,
		Expiration:     time.Duration(settings.Cookie.SessionLifetime) * time.Millisecond,
	})

	documents := document.NewManager(dataStore, retrievedHooks, postTypes, settings.Revisions.Keep, setupLogger)
	authorManager := author.NewManager(dataStore)
	cssUpdater := css.NewUpdater(dataStore, files, settings.CSS.UploadDir, settings.CSS.Minify, setupLogger)
	nonces := security.NewNonceManager(settings.Nonce.Secret, time.Duration(settings.Nonce.Lifetime)*time.Second)
	translator := utils.NewTranslator(locales, settings.Revisions.DefaultLocale)

	revisionManager := revisions.NewManager(revisions.Options{
		Store:                 documents,
		CSS:                   cssUpdater,
		Authors:               authorManager,
		PostTypes:             postTypes,
		Nonces:                nonces,
		Translator:            translator,
		Logger:                setupLogger,
		MaxRevisionsToDisplay: settings.Revisions.MaxToDisplay,
		RevisionsEnabled:      documents.RevisionsEnabled,
	})
	revisionManager.Register(retrievedHooks, revisions.RegisterOptions{
		Ajax: settings.Revisions.AjaxEnabled,
	})
	documents.Init(ctx, settings.Revisions.BuilderTypes)

	store := &lib.InitStore{
		C:                 app,
		RetrievedSettings: settings,
		CookieStore:       cookieStore,
		Store:             dataStore,
		Validator:         validatorEvaluator,
		Logger:            setupLogger,
		Hooks:             retrievedHooks,
		Documents:         documents,
		Revisions:         revisionManager,
		Nonces:            nonces,
		AuthorManager:     authorManager,
		Translator:        translator,
		CSS:               cssUpdater,
		Files:             files,
	}
	api2.InitAPI(store)
	return store
}

func InitServer(ctx context.Context, settings *settings2.Settings, setupLogger *zap.SugaredLogger, locales fs.FS) error {
	settings.GitVersion = settings2.GitVersion()
	setupLogger.Info("Starting builder revisions service...")
	if settings.GitVersion != "" {
		setupLogger.Info("Your version is " + settings.GitVersion)
	}

	dataStore, err := utils.GetDB(*settings, setupLogger)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer dataStore.Close()

	store := Build(ctx, settings, dataStore, setupLogger, locales, afero.NewOsFs())
	StartSessionCleanup(ctx, setupLogger, dataStore, time.Hour)

	go func() {
		<-ctx.Done()
		if err := store.C.Shutdown(); err != nil {
			setupLogger.Warnf("Error shutting down web server: %v", err)
		}
	}()

	fiberString := fmt.Sprintf("%s:%s", settings.IP, settings.Port)
	setupLogger.Info("Starting Web UI on " + fiberString)
	if err := store.C.Listen(fiberString); err != nil {
		return fmt.Errorf("error starting web server: %w", err)
	}
	return nil
}
