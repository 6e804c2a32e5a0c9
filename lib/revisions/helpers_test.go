package revisions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/ether/builder-revisions/lib/db"
	"github.com/ether/builder-revisions/lib/document"
	"github.com/ether/builder-revisions/lib/hooks"
	db2 "github.com/ether/builder-revisions/lib/models/db"
	"github.com/ether/builder-revisions/lib/models/post"
	"github.com/ether/builder-revisions/lib/posttype"
	"github.com/ether/builder-revisions/lib/request"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)

type countingCSS struct {
	calls []int64
	err   error
}

func (c *countingCSS) Update(docID int64) error {
	c.calls = append(c.calls, docID)
	return c.err
}

type countingAuthors struct {
	avatarCalls map[int64]int
	nameCalls   map[int64]int
}

func newCountingAuthors() *countingAuthors {
	return &countingAuthors{
		avatarCalls: make(map[int64]int),
		nameCalls:   make(map[int64]int),
	}
}

func (a *countingAuthors) GetAuthorName(authorID int64) (string, error) {
	a.nameCalls[authorID]++
	return "Author " + string(rune('A'+authorID-1)), nil
}

func (a *countingAuthors) GetAvatar(authorID int64, size int) (string, error) {
	a.avatarCalls[authorID]++
	return "<img class='avatar'>", nil
}

type staticTranslator map[string]map[string]string

func (s staticTranslator) Translate(locale string, key string) (string, bool) {
	value, ok := s[locale][key]
	return value, ok
}

type failingDeleteStore struct {
	ContentStore
}

func (failingDeleteStore) DeleteRevision(int64) (bool, error) {
	return false, errors.New("database is locked")
}

type fixture struct {
	store     *db.MemoryDataStore
	docs      *document.Manager
	hook      *hooks.Hook
	postTypes *posttype.Registry
	css       *countingCSS
	authors   *countingAuthors
	manager   *Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zap.NewNop().Sugar()

	store := db.NewMemoryDataStore()
	hook := hooks.NewHook()
	postTypes := posttype.NewRegistry()
	docs := document.NewManager(store, hook, postTypes, -1, logger)
	docs.Now = func() time.Time { return testNow }

	css := &countingCSS{}
	authors := newCountingAuthors()
	manager := NewManager(Options{
		Store:            docs,
		CSS:              css,
		Authors:          authors,
		PostTypes:        postTypes,
		Logger:           logger,
		RevisionsEnabled: docs.RevisionsEnabled,
		Now:              func() time.Time { return testNow },
	})

	return &fixture{
		store:     store,
		docs:      docs,
		hook:      hook,
		postTypes: postTypes,
		css:       css,
		authors:   authors,
		manager:   manager,
	}
}

func (f *fixture) createDocument(t *testing.T, builtWithBuilder bool, data string) int64 {
	t.Helper()
	doc, err := f.docs.CreateDocument(post.Post{
		Type:     post.TypePage,
		Status:   post.StatusPublish,
		Title:    gofakeit.Word() + " " + gofakeit.Word(),
		Content:  gofakeit.UUID(),
		AuthorID: 1,
	})
	require.NoError(t, err)
	if builtWithBuilder {
		require.NoError(t, f.docs.SetBuiltWithBuilder(doc.ID, true))
	}
	if data != "" {
		require.NoError(t, f.store.SetPostMeta(doc.ID, post.MetaBuilderData, data))
	}
	return doc.ID
}

func (f *fixture) createRevision(t *testing.T, docID int64, name string, authorID int64, modified time.Time, data string) int64 {
	t.Helper()
	id, err := f.store.SavePost(db2.PostDB{
		Type:     post.TypeRevision,
		Status:   post.StatusInherit,
		Name:     name,
		AuthorID: authorID,
		ParentID: docID,
		Modified: modified,
	})
	require.NoError(t, err)
	if data != "" {
		require.NoError(t, f.store.SetPostMeta(id, post.MetaBuilderData, data))
	}
	return id
}

func requestContext(docID int64, userID int64) context.Context {
	return request.WithState(context.Background(), request.NewState(docID, userID))
}
