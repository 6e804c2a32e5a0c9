package settings

type DBSettings struct {
	Filename string
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

type Revisions struct {
	// Keep is the number of manual revisions kept per document. -1 keeps
	// all of them, 0 disables revisions.
	Keep          int
	MaxToDisplay  int
	BuilderTypes  []string
	AjaxEnabled   bool
	DefaultLocale string
}

type CSS struct {
	UploadDir string
	Minify    bool
}

type Nonce struct {
	Secret   string
	Lifetime int64
}

type Cookie struct {
	SameSite        string
	SessionLifetime int64
}

type Settings struct {
	IP            string
	Port          string
	LogLevel      string
	DBType        IDBType
	DBSettings    *DBSettings
	Revisions     Revisions
	CSS           CSS
	Nonce         Nonce
	Cookie        Cookie
	EnableMetrics bool
	GitVersion    string
}
