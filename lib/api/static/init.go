package static

import (
	"net/http"
	"strings"

	"github.com/ether/builder-revisions/lib"
	"github.com/gofiber/adaptor/v2"
	"github.com/spf13/afero"
)

const CSSRoute = "/uploads/css/"

// registerFsStatic serves dir of fs below route.
func registerFsStatic(store *lib.InitStore, route string, fs afero.Fs, dir string) {
	prefix := strings.TrimSuffix(route, "/")
	handler := http.StripPrefix(prefix+"/", http.FileServer(afero.NewHttpFs(fs).Dir(dir)))
	store.C.Get(prefix+"/*", adaptor.HTTPHandler(handler))
}

// Init serves the generated document stylesheets.
func Init(store *lib.InitStore) {
	registerFsStatic(store, CSSRoute, store.Files, store.CSS.Dir())
}
