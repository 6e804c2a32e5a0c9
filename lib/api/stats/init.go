package stats

import (
	"github.com/ether/builder-revisions/lib"
	"github.com/ether/builder-revisions/lib/metrics"
	"github.com/gofiber/adaptor/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Init(store *lib.InitStore) {
	checks := []Checker{
		DBChecker{store.Store},
		RevisionsChecker{store.RetrievedSettings.Revisions},
		StylesheetChecker{store.Files, store.CSS.Dir()},
	}

	store.C.Get("/health", Handler(
		store.RetrievedSettings.GitVersion,
		"builder-revisions",
		checks,
	))

	if store.RetrievedSettings.EnableMetrics {
		handler := promhttp.HandlerFor(
			metrics.NewRegistry(),
			promhttp.HandlerOpts{},
		)
		store.C.Get("/metrics", adaptor.HTTPHandler(handler))
	}
}
