package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "builder"

var (
	RevisionsCaptured = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revisions_captured_total",
			Help:      "Number of revisions that received a copy of the builder data",
		},
	)

	RevisionsRestored = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revisions_restored_total",
			Help:      "Number of restored revisions by builder usage",
		},
		[]string{"builder"},
	)

	RevisionsListed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revision_listings_total",
			Help:      "Number of revision listings served",
		},
	)

	AjaxRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ajax_requests_total",
			Help:      "Number of revision ajax requests by action and outcome",
		},
		[]string{"action", "result"},
	)

	CSSRegenerations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "css_regenerations_total",
			Help:      "Number of document stylesheet regenerations by outcome",
		},
		[]string{"result"},
	)
)

// NewRegistry returns a registry carrying the runtime collectors and every
// builder collector.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		RevisionsCaptured,
		RevisionsRestored,
		RevisionsListed,
		AjaxRequests,
		CSSRegenerations,
	)
	return reg
}

func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
