package settings

const (
	IP       = "ip"
	Port     = "port"
	Loglevel = "logLevel"

	DBType             = "dbType"
	DBSettingsFilename = "dbSettings.filename"
	DBSettingsHost     = "dbSettings.host"
	DBSettingsPort     = "dbSettings.port"
	DBSettingsDatabase = "dbSettings.database"
	DBSettingsUser     = "dbSettings.user"
	DBSettingsPassword = "dbSettings.password"

	RevisionsKeep         = "revisions.keep"
	RevisionsMaxToDisplay = "revisions.maxToDisplay"
	BuilderPostTypes      = "builder.postTypes"
	AjaxEnabled           = "ajax.enabled"
	DefaultLocale         = "defaultLocale"

	CSSUploadDir = "css.uploadDir"
	CSSMinify    = "css.minify"

	NonceSecret   = "nonce.secret"
	NonceLifetime = "nonce.lifetime"

	CookieSameSite        = "cookie.sameSite"
	CookieSessionLifetime = "cookie.sessionLifetime"

	EnableMetrics = "enableMetrics"
)
