package settings

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreApplied(t *testing.T) {
	viper.Reset()

	cfg, err := ReadConfig("")
	require.NoError(t, err)

	require.Equal(t, "9001", cfg.Port)
	require.Equal(t, SQLITE, cfg.DBType)
	require.Equal(t, -1, cfg.Revisions.Keep)
	require.Equal(t, 100, cfg.Revisions.MaxToDisplay)
	require.Equal(t, []string{"post", "page"}, cfg.Revisions.BuilderTypes)
	require.True(t, cfg.Revisions.AjaxEnabled)
	require.Equal(t, "en", cfg.Revisions.DefaultLocale)
	require.Equal(t, "var/uploads", cfg.CSS.UploadDir)
	require.True(t, cfg.CSS.Minify)
	require.Equal(t, int64(86400), cfg.Nonce.Lifetime)
	require.True(t, cfg.EnableMetrics)
}

func TestJSONOverridesDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := ReadConfig(`{
		"dbType": "memory",
		"revisions": {"keep": 5, "maxToDisplay": 20},
		"builder": {"postTypes": ["page", "product"]},
		"css": {"minify": false}
	}`)
	require.NoError(t, err)

	assert.Equal(t, MEMORY, cfg.DBType)
	assert.Equal(t, 5, cfg.Revisions.Keep)
	assert.Equal(t, 20, cfg.Revisions.MaxToDisplay)
	assert.Equal(t, []string{"page", "product"}, cfg.Revisions.BuilderTypes)
	assert.False(t, cfg.CSS.Minify)
	assert.Equal(t, "9001", cfg.Port)
}

func TestEnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("BUILDER_PORT", "9999")
	t.Setenv("BUILDER_REVISIONS_KEEP", "3")

	cfg, err := ReadConfig("")
	require.NoError(t, err)
	require.Equal(t, "9999", cfg.Port)
	require.Equal(t, 3, cfg.Revisions.Keep)
}

func TestUnknownDBType(t *testing.T) {
	viper.Reset()

	_, err := ReadConfig(`{"dbType": "mongodb"}`)
	assert.Error(t, err)
}

func TestParseDBType(t *testing.T) {
	dbType, err := ParseDBType(" Postgres ")
	require.NoError(t, err)
	assert.Equal(t, POSTGRES, dbType)
	assert.True(t, dbType.Persistent())
	assert.False(t, MEMORY.Persistent())

	_, err = ParseDBType("mysql")
	assert.ErrorContains(t, err, "expected one of [sqlite postgres memory]")
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "BUILDER_REVISIONS_MAXTODISPLAY", EnvVar(RevisionsMaxToDisplay))
}

func TestConfigCommands(t *testing.T) {
	viper.Reset()
	_, err := ReadConfig(`{"port": "8080"}`)
	require.NoError(t, err)

	var show bytes.Buffer
	ConfigShow(&show)
	assert.Contains(t, show.String(), "BUILDER_PORT")
	assert.Contains(t, show.String(), "8080")

	var get bytes.Buffer
	require.NoError(t, ConfigGet(&get, Port))
	assert.Equal(t, "8080\n", get.String())
	assert.Error(t, ConfigGet(&get, "title"))

	var initOut bytes.Buffer
	require.NoError(t, ConfigInit(&initOut))
	assert.Contains(t, initOut.String(), `"revisions.keep": -1`)
}
