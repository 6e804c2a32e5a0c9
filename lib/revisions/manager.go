// Package revisions keeps builder data in step with the revisions the host
// creates, restores and deletes, and formats revision lists for the editor.
package revisions

import (
	"sync"
	"time"

	"github.com/ether/builder-revisions/lib/hooks"
	db2 "github.com/ether/builder-revisions/lib/models/db"
	"github.com/ether/builder-revisions/lib/models/post"
	"go.uber.org/zap"
)

const (
	MaxRevisionsToDisplay = 100
	AvatarSize            = 22
	NonceAction           = "builder_editing"

	GetRevisionDataAction = "builder_get_revision_data"
	DeleteRevisionAction  = "builder_delete_revision"
)

// ContentStore is the part of the host content store the coordinator
// delegates to.
type ContentStore interface {
	GetDocument(id int64) (*post.Post, error)
	GetRevisions(docID int64, query db2.PostQuery) ([]post.Post, error)
	DeleteRevision(revisionID int64) (bool, error)
	RevisionParent(revisionID int64) (*post.Post, error)
	IsBuiltWithBuilder(id int64) (bool, error)
	SetBuiltWithBuilder(id int64, builtWith bool) error
	CopyBuilderMetadata(fromID, toID int64) error
	GetRawBuilderMetadata(id int64) (string, error)
}

type CSSRegenerator interface {
	Update(docID int64) error
}

type AuthorDirectory interface {
	GetAuthorName(authorID int64) (string, error)
	GetAvatar(authorID int64, size int) (string, error)
}

type PostTypeRegistry interface {
	TypesSupporting(feature string) []string
	AddSupport(postType string, feature string)
}

type NonceVerifier interface {
	Verify(nonce string, userID int64, action string) error
}

type Translator interface {
	Translate(locale string, key string) (string, bool)
}

type Options struct {
	Store                 ContentStore
	CSS                   CSSRegenerator
	Authors               AuthorDirectory
	PostTypes             PostTypeRegistry
	Nonces                NonceVerifier
	Translator            Translator
	Logger                *zap.SugaredLogger
	MaxRevisionsToDisplay int
	RevisionsEnabled      func(doc post.Post) bool
	Now                   func() time.Time
}

type RegisterOptions struct {
	// Ajax subscribes the two request handlers. Set it when the host serves
	// asynchronous editor requests.
	Ajax bool
}

type Manager struct {
	store            ContentStore
	css              CSSRegenerator
	authors          AuthorDirectory
	postTypes        PostTypeRegistry
	nonces           NonceVerifier
	translator       Translator
	logger           *zap.SugaredLogger
	maxToDisplay     int
	revisionsEnabled func(doc post.Post) bool
	now              func() time.Time

	mu         sync.Mutex
	registered map[*hooks.Hook]struct{}
}

func NewManager(options Options) *Manager {
	m := &Manager{
		store:            options.Store,
		css:              options.CSS,
		authors:          options.Authors,
		postTypes:        options.PostTypes,
		nonces:           options.Nonces,
		translator:       options.Translator,
		logger:           options.Logger,
		maxToDisplay:     options.MaxRevisionsToDisplay,
		revisionsEnabled: options.RevisionsEnabled,
		now:              options.Now,
		registered:       make(map[*hooks.Hook]struct{}),
	}
	if m.logger == nil {
		m.logger = zap.NewNop().Sugar()
	}
	if m.maxToDisplay <= 0 {
		m.maxToDisplay = MaxRevisionsToDisplay
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.revisionsEnabled == nil {
		m.revisionsEnabled = func(post.Post) bool { return true }
	}
	return m
}
