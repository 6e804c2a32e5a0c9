package css

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ether/builder-revisions/lib/db"
	"github.com/ether/builder-revisions/lib/metrics"
	"github.com/ether/builder-revisions/lib/models/post"
	"github.com/evanw/esbuild/pkg/api"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	StatusFile  = "file"
	StatusEmpty = "empty"
)

// Meta is the record stored under _builder_css after every regeneration.
type Meta struct {
	Time   int64  `json:"time"`
	Status string `json:"status"`
}

type Updater struct {
	store     db.MetaMethods
	fs        afero.Fs
	uploadDir string
	minify    bool
	logger    *zap.SugaredLogger
	Now       func() time.Time
}

func NewUpdater(store db.MetaMethods, fs afero.Fs, uploadDir string, minify bool, logger *zap.SugaredLogger) *Updater {
	return &Updater{
		store:     store,
		fs:        fs,
		uploadDir: uploadDir,
		minify:    minify,
		logger:    logger,
		Now:       time.Now,
	}
}

func (u *Updater) Path(docID int64) string {
	return filepath.Join(u.Dir(), fmt.Sprintf("post-%d.css", docID))
}

// Dir is the directory holding every generated stylesheet.
func (u *Updater) Dir() string {
	return filepath.Join(u.uploadDir, "css")
}

// Update regenerates the stylesheet of the document from its current builder
// data and records the outcome in the document meta.
func (u *Updater) Update(docID int64) (err error) {
	defer func() {
		metrics.CSSRegenerations.WithLabelValues(metrics.Result(err)).Inc()
	}()

	data, err := u.store.GetPostMeta(docID, post.MetaBuilderData)
	if err != nil {
		return fmt.Errorf("failed to read builder data of %d: %w", docID, err)
	}

	var raw string
	if data != nil {
		raw = *data
	}
	elements, err := ParseElements(raw)
	if err != nil {
		return err
	}
	stylesheet, err := Render(docID, elements)
	if err != nil {
		return err
	}

	status := StatusFile
	if strings.TrimSpace(stylesheet) == "" {
		status = StatusEmpty
		if err := u.fs.Remove(u.Path(docID)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove stale stylesheet: %w", err)
		}
	} else {
		if u.minify {
			stylesheet, err = Minify(stylesheet)
			if err != nil {
				return err
			}
		}
		if err := u.fs.MkdirAll(filepath.Dir(u.Path(docID)), 0o755); err != nil {
			return fmt.Errorf("failed to create css directory: %w", err)
		}
		if err := afero.WriteFile(u.fs, u.Path(docID), []byte(stylesheet), 0o644); err != nil {
			return fmt.Errorf("failed to write stylesheet: %w", err)
		}
	}

	encoded, err := json.Marshal(Meta{Time: u.Now().Unix(), Status: status})
	if err != nil {
		return err
	}
	if err := u.store.SetPostMeta(docID, post.MetaCSS, string(encoded)); err != nil {
		return fmt.Errorf("failed to store css meta: %w", err)
	}

	u.logger.Debugw("regenerated stylesheet", "document", docID, "status", status)
	return nil
}

func Minify(stylesheet string) (string, error) {
	result := api.Transform(stylesheet, api.TransformOptions{
		Loader:           api.LoaderCSS,
		MinifyWhitespace: true,
		MinifySyntax:     true,
		LogLevel:         api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		return "", fmt.Errorf("failed to minify stylesheet: %s", result.Errors[0].Text)
	}
	return string(result.Code), nil
}
