package stats

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/ether/builder-revisions/lib/db"
	"github.com/ether/builder-revisions/lib/settings"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
)

type DBChecker struct {
	store db.DataStore
}

func (d DBChecker) Name() string {
	return "database"
}

func (d DBChecker) Check() Check {
	if err := d.store.Ping(); err != nil {
		return Check{Status: StatusFail, ComponentType: "datastore", Output: err.Error()}
	}
	return Check{
		Status:        StatusPass,
		ComponentType: "datastore",
		ObservedAt:    time.Now().UTC().Format(time.RFC3339),
	}
}

// RevisionsChecker warns when revisions are switched off.
type RevisionsChecker struct {
	revisions settings.Revisions
}

func (r RevisionsChecker) Name() string {
	return "revisions"
}

func (r RevisionsChecker) Check() Check {
	if r.revisions.Keep == 0 {
		return Check{Status: StatusWarn, Output: "revisions are disabled"}
	}
	return Check{Status: StatusPass, Observed: r.revisions.Keep}
}

// StylesheetChecker counts the generated stylesheets. A missing directory
// only means nothing was restored or saved yet.
type StylesheetChecker struct {
	files afero.Fs
	dir   string
}

func (s StylesheetChecker) Name() string {
	return "stylesheets"
}

func (s StylesheetChecker) Check() Check {
	entries, err := afero.ReadDir(s.files, s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return Check{Status: StatusPass, ComponentType: "filesystem", Observed: 0}
	}
	if err != nil {
		return Check{Status: StatusFail, ComponentType: "filesystem", Output: err.Error()}
	}

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), ".css") {
			count++
		}
	}
	return Check{Status: StatusPass, ComponentType: "filesystem", Observed: count}
}

// Handler reports the worst status of all checkers, 503 when one of them
// fails.
func Handler(version string, serviceID string, checkers []Checker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resp := HealthResponse{
			Status:    StatusPass,
			Version:   version,
			ServiceID: serviceID,
			Checks:    make(map[string][]Check, len(checkers)),
		}
		for _, checker := range checkers {
			check := checker.Check()
			resp.Checks[checker.Name()] = []Check{check}
			resp.Status = resp.Status.worse(check.Status)
		}

		if resp.Status == StatusFail {
			return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
		}
		return c.JSON(resp)
	}
}
