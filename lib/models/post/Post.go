package post

import (
	"strconv"
	"strings"
	"time"
)

const (
	TypeRevision = "revision"
	TypePage     = "page"
	TypePost     = "post"
)

const (
	StatusDraft    = "draft"
	StatusPublish  = "publish"
	StatusPrivate  = "private"
	StatusPending  = "pending"
	StatusInherit  = "inherit"
	StatusAutosave = "autosave"
)

// Builder owned post meta. Everything starting with MetaBuilderPrefix travels
// with a revision snapshot.
const (
	MetaBuilderPrefix  = "_builder"
	MetaBuilderData    = "_builder_data"
	MetaEditMode       = "_builder_edit_mode"
	MetaBuilderVersion = "_builder_version"
	MetaCSS            = "_builder_css"
	MetaPageTemplate   = "_page_template"

	EditModeBuilder = "builder"
)

// Feature names a post type can support.
const (
	SupportBuilder   = "builder"
	SupportRevisions = "revisions"
)

type Post struct {
	ID       int64     `json:"id"`
	Type     string    `json:"type"`
	Status   string    `json:"status"`
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	AuthorID int64     `json:"author"`
	ParentID int64     `json:"parent"`
	Modified time.Time `json:"modified"`
}

func (p Post) IsRevision() bool {
	return p.Type == TypeRevision
}

func (p Post) IsAutosave() bool {
	return p.IsRevision() && strings.Contains(p.Name, "autosave")
}

// IsBuilderMetaKey reports whether key is copied between a document and its
// revisions.
func IsBuilderMetaKey(key string) bool {
	return strings.HasPrefix(key, MetaBuilderPrefix) || key == MetaPageTemplate
}

func RevisionName(parentID int64, autosave bool) string {
	kind := "revision"
	if autosave {
		kind = "autosave"
	}
	return strconv.FormatInt(parentID, 10) + "-" + kind + "-v1"
}
