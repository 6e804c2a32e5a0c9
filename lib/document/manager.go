package document

import (
	"errors"
	"fmt"
	"time"

	"github.com/ether/builder-revisions/lib/db"
	"github.com/ether/builder-revisions/lib/hooks"
	db2 "github.com/ether/builder-revisions/lib/models/db"
	"github.com/ether/builder-revisions/lib/models/post"
	"github.com/ether/builder-revisions/lib/posttype"
	"go.uber.org/zap"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrRevisionNotFound = errors.New("revision not found")
)

// Manager is the content store of the host. It owns documents, their
// revisions and their post meta, and fires the host events around them.
//
// keep is the number of manual revisions kept per document. A negative value
// keeps all of them, zero disables revisions.
type Manager struct {
	store     db.DataStore
	hook      *hooks.Hook
	postTypes *posttype.Registry
	logger    *zap.SugaredLogger
	keep      int
	Now       func() time.Time
}

func NewManager(store db.DataStore, hook *hooks.Hook, postTypes *posttype.Registry, keep int, logger *zap.SugaredLogger) *Manager {
	return &Manager{
		store:     store,
		hook:      hook,
		postTypes: postTypes,
		logger:    logger,
		keep:      keep,
		Now:       time.Now,
	}
}

func isPostNotFound(err error) bool {
	return err != nil && err.Error() == db.PostNotFoundError
}

func (m *Manager) getPost(id int64) (*post.Post, error) {
	if id <= 0 {
		return nil, nil
	}
	found, err := m.store.GetPost(id)
	if isPostNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load post %d: %w", id, err)
	}
	p := post.FromDB(*found)
	return &p, nil
}

func (m *Manager) CreateDocument(doc post.Post) (*post.Post, error) {
	if doc.Type == "" {
		doc.Type = post.TypePage
	}
	if doc.IsRevision() {
		return nil, fmt.Errorf("cannot create a document of type %s", doc.Type)
	}
	if doc.Status == "" {
		doc.Status = post.StatusDraft
	}
	if doc.Modified.IsZero() {
		doc.Modified = m.Now()
	}
	id, err := m.store.SavePost(doc.ToDB())
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	doc.ID = id
	return &doc, nil
}

// GetDocument returns the document with the given id. Revisions are not
// documents.
func (m *Manager) GetDocument(id int64) (*post.Post, error) {
	doc, err := m.getPost(id)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.IsRevision() {
		return nil, ErrDocumentNotFound
	}
	return doc, nil
}

// GetRevisions lists the revisions of docID, newest first. An unknown
// document has no revisions.
func (m *Manager) GetRevisions(docID int64, query db2.PostQuery) ([]post.Post, error) {
	doc, err := m.getPost(docID)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.IsRevision() {
		return []post.Post{}, nil
	}

	query.PostType = post.TypeRevision
	children, err := m.store.GetChildPosts(docID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list revisions of %d: %w", docID, err)
	}
	return post.FromDBList(children), nil
}

// DeleteRevision removes a revision and its meta. It reports false when id
// does not name a revision.
func (m *Manager) DeleteRevision(revisionID int64) (bool, error) {
	revision, err := m.getPost(revisionID)
	if err != nil {
		return false, err
	}
	if revision == nil || !revision.IsRevision() {
		return false, nil
	}
	if err := m.store.RemovePost(revisionID); err != nil {
		return false, fmt.Errorf("failed to delete revision %d: %w", revisionID, err)
	}
	m.logger.Debugw("deleted revision", "revision", revisionID, "document", revision.ParentID)
	return true, nil
}

// RevisionParent returns the document a revision belongs to, or nil when
// revisionID is not a revision of an existing document.
func (m *Manager) RevisionParent(revisionID int64) (*post.Post, error) {
	revision, err := m.getPost(revisionID)
	if err != nil || revision == nil || !revision.IsRevision() {
		return nil, err
	}
	parent, err := m.getPost(revision.ParentID)
	if err != nil || parent == nil || parent.IsRevision() {
		return nil, err
	}
	return parent, nil
}

func (m *Manager) IsBuiltWithBuilder(id int64) (bool, error) {
	mode, err := m.store.GetPostMeta(id, post.MetaEditMode)
	if err != nil {
		return false, err
	}
	return mode != nil && *mode == post.EditModeBuilder, nil
}

func (m *Manager) SetBuiltWithBuilder(id int64, builtWith bool) error {
	if builtWith {
		return m.store.SetPostMeta(id, post.MetaEditMode, post.EditModeBuilder)
	}
	return m.store.RemovePostMeta(id, post.MetaEditMode)
}

// CopyBuilderMetadata copies every builder owned meta entry of fromID onto
// toID without altering the values.
func (m *Manager) CopyBuilderMetadata(fromID, toID int64) error {
	meta, err := m.store.GetAllPostMeta(fromID)
	if err != nil {
		return fmt.Errorf("failed to read meta of %d: %w", fromID, err)
	}
	for key, value := range meta {
		if !post.IsBuilderMetaKey(key) {
			continue
		}
		if err := m.store.SetPostMeta(toID, key, value); err != nil {
			return fmt.Errorf("failed to copy %s to %d: %w", key, toID, err)
		}
	}
	return nil
}

// GetRawBuilderMetadata returns the builder data blob of id, empty when unset.
func (m *Manager) GetRawBuilderMetadata(id int64) (string, error) {
	data, err := m.store.GetPostMeta(id, post.MetaBuilderData)
	if err != nil || data == nil {
		return "", err
	}
	return *data, nil
}

func (m *Manager) RevisionsEnabled(doc post.Post) bool {
	return m.keep != 0 && m.postTypes.Supports(doc.Type, post.SupportRevisions)
}
