package settings

import (
	"strings"

	"github.com/spf13/viper"
)

type ConfigKey struct {
	Key         string
	Default     any
	Description string
}

const envPrefix = "BUILDER"

func EnvVar(key string) string {
	return envPrefix + "_" + strings.ToUpper(
		strings.ReplaceAll(key, ".", "_"),
	)
}

var Registry = []ConfigKey{
	// ---------------------------------------------------------------------
	// Server
	// ---------------------------------------------------------------------
	{Key: IP, Default: "0.0.0.0", Description: "Bind address"},
	{Key: Port, Default: "9001", Description: "HTTP server port"},
	{Key: Loglevel, Default: "INFO", Description: "Log level (DEBUG, INFO, WARN, ERROR)"},
	{Key: EnableMetrics, Default: true, Description: "Expose Prometheus metrics on /metrics"},

	// ---------------------------------------------------------------------
	// Database
	// ---------------------------------------------------------------------
	{Key: DBType, Default: SQLITE, Description: "Database type (sqlite, postgres, memory)"},
	{
		Key:         DBSettingsFilename,
		Default:     "var/builder.db",
		Description: "SQLite database filename",
	},
	{Key: DBSettingsHost, Default: nil, Description: "Database host"},
	{Key: DBSettingsPort, Default: nil, Description: "Database port"},
	{Key: DBSettingsDatabase, Default: nil, Description: "Database name"},
	{Key: DBSettingsUser, Default: nil, Description: "Database user"},
	{Key: DBSettingsPassword, Default: nil, Description: "Database password"},

	// ---------------------------------------------------------------------
	// Revisions
	// ---------------------------------------------------------------------
	{
		Key:         RevisionsKeep,
		Default:     -1,
		Description: "Manual revisions kept per document (-1 keeps all, 0 disables revisions)",
	},
	{
		Key:         RevisionsMaxToDisplay,
		Default:     100,
		Description: "Maximum number of revisions listed in the editor",
	},
	{
		Key:         BuilderPostTypes,
		Default:     []string{"post", "page"},
		Description: "Post types edited with the builder",
	},
	{Key: AjaxEnabled, Default: true, Description: "Serve the asynchronous editor endpoints"},
	{Key: DefaultLocale, Default: "en", Description: "Locale used when the request names none"},

	// ---------------------------------------------------------------------
	// Stylesheets
	// ---------------------------------------------------------------------
	{Key: CSSUploadDir, Default: "var/uploads", Description: "Directory generated stylesheets are written to"},
	{Key: CSSMinify, Default: true, Description: "Minify generated stylesheets"},

	// ---------------------------------------------------------------------
	// Security
	// ---------------------------------------------------------------------
	{Key: NonceSecret, Default: "", Description: "Secret nonces are signed with (random when empty)"},
	{Key: NonceLifetime, Default: 86400, Description: "Nonce lifetime in seconds"},
	{Key: CookieSameSite, Default: "lax", Description: "SameSite attribute of the session cookie"},
	{
		Key:         CookieSessionLifetime,
		Default:     864000000,
		Description: "Session lifetime in milliseconds",
	},
}

func ApplyRegistryDefaults() {
	for _, c := range Registry {
		viper.SetDefault(c.Key, c.Default)
	}
}
