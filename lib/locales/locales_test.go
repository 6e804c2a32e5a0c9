package locales

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var assets = fstest.MapFS{
	"assets/locales/en.json": {Data: []byte(`{"@metadata":{},"revisions.a":"A","revisions.b":"B"}`)},
	"assets/locales/de.json": {Data: []byte(`{"revisions.a":"A"}`)},
	"assets/locales/fr.json": {Data: []byte(`{"revisions.a":"A","revisions.b":"B"}`)},
	"assets/locales/README":  {Data: []byte(`not a locale`)},
}

func TestAvailable(t *testing.T) {
	names, err := Available(assets)
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "en", "fr"}, names)
}

func TestMissing(t *testing.T) {
	missing, err := Missing(assets, "en")
	require.NoError(t, err)

	want := map[string][]string{"de": {"revisions.b"}}
	if diff := cmp.Diff(want, missing); diff != "" {
		t.Errorf("Missing() mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingBrokenLocale(t *testing.T) {
	broken := fstest.MapFS{
		"assets/locales/en.json": {Data: []byte(`{"a":"A"}`)},
		"assets/locales/it.json": {Data: []byte(`{`)},
	}
	_, err := Missing(broken, "en")
	assert.Error(t, err)

	_, err = Missing(broken, "xx")
	assert.Error(t, err)
}
