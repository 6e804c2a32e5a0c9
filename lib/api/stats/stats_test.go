package stats_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ether/builder-revisions/lib/api/stats"
	"github.com/ether/builder-revisions/lib/test/testutils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestMetricsEndpointExists(t *testing.T) {
	m := testutils.InitMemoryUtils()

	req := httptest.NewRequest("GET", "/metrics", nil)
	resp, err := m.C.Test(req, 1000)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	output := string(body)
	require.Equal(t, 200, resp.StatusCode)
	require.Contains(t, output, "builder_revisions_captured_total")
	require.Contains(t, output, "builder_revision_listings_total")
	require.Contains(t, output, "go_goroutines")
}

func TestMetricsDisabled(t *testing.T) {
	retrievedSettings := testutils.TestSettings()
	retrievedSettings.EnableMetrics = false
	m := testutils.InitMemoryUtilsWithSettings(retrievedSettings)

	req := httptest.NewRequest("GET", "/metrics", nil)
	resp, err := m.C.Test(req, 1000)
	require.NoError(t, err)
	require.Equal(t, 404, resp.StatusCode)
}

func TestHealthEndpointExists(t *testing.T) {
	m := testutils.InitMemoryUtils()

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := m.C.Test(req, 1000)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var health stats.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	require.Equal(t, stats.StatusPass, health.Status)
	require.Equal(t, "test", health.Version)
	require.Equal(t, stats.StatusPass, health.Checks["database"][0].Status)
}

func TestHealthWarnsWhenRevisionsDisabled(t *testing.T) {
	retrievedSettings := testutils.TestSettings()
	retrievedSettings.Revisions.Keep = 0
	m := testutils.InitMemoryUtilsWithSettings(retrievedSettings)

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := m.C.Test(req, 1000)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var health stats.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	require.Equal(t, stats.StatusWarn, health.Status)
	require.Equal(t, "revisions are disabled", health.Checks["revisions"][0].Output)
}

func TestHealthCountsStylesheets(t *testing.T) {
	m := testutils.InitMemoryUtils()
	require.NoError(t, afero.WriteFile(m.Files, filepath.Join(m.CSS.Dir(), "post-1.css"), []byte("a{}"), 0o644))
	require.NoError(t, afero.WriteFile(m.Files, filepath.Join(m.CSS.Dir(), "notes.txt"), []byte("-"), 0o644))

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := m.C.Test(req, 1000)
	require.NoError(t, err)

	var health stats.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	check := health.Checks["stylesheets"][0]
	require.Equal(t, stats.StatusPass, check.Status)
	require.Equal(t, float64(1), check.Observed)
}
