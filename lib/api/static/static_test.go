package static_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/ether/builder-revisions/lib/test/testutils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServesGeneratedStylesheets(t *testing.T) {
	m := testutils.InitMemoryUtils()
	require.NoError(t, afero.WriteFile(m.Files, m.CSS.Path(12), []byte(".builder-12{color:red}"), 0o644))

	req := httptest.NewRequest("GET", "/uploads/css/post-12.css", nil)
	resp, err := m.C.Test(req, 1000)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, ".builder-12{color:red}", string(body))
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")
}

func TestMissingStylesheet(t *testing.T) {
	m := testutils.InitMemoryUtils()

	req := httptest.NewRequest("GET", "/uploads/css/post-404.css", nil)
	resp, err := m.C.Test(req, 1000)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
