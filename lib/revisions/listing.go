package revisions

import (
	"context"
	"fmt"
	"strings"

	"github.com/ether/builder-revisions/lib/metrics"
	db2 "github.com/ether/builder-revisions/lib/models/db"
	"github.com/ether/builder-revisions/lib/models/post"
	"github.com/ether/builder-revisions/lib/request"
)

const (
	TypeAutosave = "autosave"
	TypeRevision = "revision"
)

// Summary is one entry of the revision panel.
type Summary struct {
	ID       int64  `json:"id"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Type     string `json:"type"`
	Gravatar string `json:"gravatar"`
}

// RevisionType classifies a revision by its name.
func RevisionType(name string) string {
	if strings.Contains(name, "autosave") {
		return TypeAutosave
	}
	return TypeRevision
}

type authorEntry struct {
	avatar      string
	displayName string
}

// authorCache memoizes author lookups for the duration of one listing.
type authorCache struct {
	directory AuthorDirectory
	entries   map[int64]authorEntry
}

func newAuthorCache(directory AuthorDirectory) *authorCache {
	return &authorCache{
		directory: directory,
		entries:   make(map[int64]authorEntry),
	}
}

func (c *authorCache) get(authorID int64) (authorEntry, error) {
	if entry, ok := c.entries[authorID]; ok {
		return entry, nil
	}

	avatar, err := c.directory.GetAvatar(authorID, AvatarSize)
	if err != nil {
		return authorEntry{}, err
	}
	name, err := c.directory.GetAuthorName(authorID)
	if err != nil {
		return authorEntry{}, err
	}

	entry := authorEntry{avatar: avatar, displayName: name}
	c.entries[authorID] = entry
	return entry, nil
}

func (m *Manager) withDefaults(query db2.PostQuery) db2.PostQuery {
	if query.PostsPerPage == 0 {
		query.PostsPerPage = m.maxToDisplay
	}
	if query.MetaKey == "" {
		query.MetaKey = post.MetaBuilderData
	}
	return query
}

// GetRawRevisions returns the revisions of docID as the host lists them.
// A zero docID means the document of the current request. Unknown documents
// have no revisions.
func (m *Manager) GetRawRevisions(ctx context.Context, docID int64, query db2.PostQuery) ([]post.Post, error) {
	if docID == 0 {
		docID = request.FromContext(ctx).DocumentID()
	}
	if docID <= 0 {
		return []post.Post{}, nil
	}

	revisions, err := m.store.GetRevisions(docID, m.withDefaults(query))
	if err != nil {
		return nil, err
	}
	if revisions == nil {
		revisions = []post.Post{}
	}
	return revisions, nil
}

func (m *Manager) GetRevisionIDs(ctx context.Context, docID int64, query db2.PostQuery) ([]int64, error) {
	query.IDsOnly = true
	revisions, err := m.GetRawRevisions(ctx, docID, query)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(revisions))
	for _, revision := range revisions {
		ids = append(ids, revision.ID)
	}
	return ids, nil
}

// GetRevisions returns the display summaries of the revisions of docID in
// host order.
func (m *Manager) GetRevisions(ctx context.Context, docID int64, query db2.PostQuery) ([]Summary, error) {
	revisions, err := m.GetRawRevisions(ctx, docID, query)
	if err != nil {
		return nil, err
	}

	now := m.now()
	dates := m.dateFormatter(request.FromContext(ctx).Locale())
	authors := newAuthorCache(m.authors)
	summaries := make([]Summary, 0, len(revisions))
	for _, revision := range revisions {
		author, err := authors.get(revision.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve author %d: %w", revision.AuthorID, err)
		}

		summaries = append(summaries, Summary{
			ID:       revision.ID,
			Author:   author.displayName,
			Date:     dates.format(revision.Modified, now),
			Type:     RevisionType(revision.Name),
			Gravatar: author.avatar,
		})
	}

	metrics.RevisionsListed.Inc()
	return summaries, nil
}
