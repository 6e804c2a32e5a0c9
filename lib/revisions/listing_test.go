package revisions

import (
	"os"
	"testing"
	"time"

	db2 "github.com/ether/builder-revisions/lib/models/db"
	"github.com/ether/builder-revisions/lib/models/post"
	"github.com/ether/builder-revisions/lib/request"
	"github.com/ether/builder-revisions/lib/utils"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevisionType(t *testing.T) {
	cases := map[string]string{
		"autosave-12":        TypeAutosave,
		"12-autosave-v1":     TypeAutosave,
		"12-v1-autosave":     TypeAutosave,
		"autosave":           TypeAutosave,
		"12-revision-v1":     TypeRevision,
		"auto-save":          TypeRevision,
		"":                   TypeRevision,
		"12-Autosave-v1":     TypeRevision,
		"draft-autosavework": TypeAutosave,
	}
	for name, want := range cases {
		assert.Equal(t, want, RevisionType(name), name)
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		modified time.Time
		want     string
	}{
		{testNow, "1 min ago (Mar 4 @ 12:00)"},
		{testNow.Add(-30 * time.Second), "1 min ago (Mar 4 @ 11:59)"},
		{testNow.Add(-89 * time.Second), "1 min ago (Mar 4 @ 11:58)"},
		{testNow.Add(-90 * time.Second), "2 mins ago (Mar 4 @ 11:58)"},
		{testNow.Add(-100 * time.Second), "2 mins ago (Mar 4 @ 11:58)"},
		{testNow.Add(-5 * time.Minute), "5 mins ago (Mar 4 @ 11:55)"},
		{testNow.Add(-59 * time.Minute), "59 mins ago (Mar 4 @ 11:01)"},
		{testNow.Add(-89 * time.Minute), "1 hour ago (Mar 4 @ 10:31)"},
		{testNow.Add(-90 * time.Minute), "2 hours ago (Mar 4 @ 10:30)"},
		{testNow.Add(-3 * time.Hour), "3 hours ago (Mar 4 @ 09:00)"},
		{testNow.Add(-35 * time.Hour), "1 day ago (Mar 3 @ 01:00)"},
		{testNow.Add(-36 * time.Hour), "2 days ago (Mar 3 @ 00:00)"},
		{testNow.Add(-50 * time.Hour), "2 days ago (Mar 2 @ 10:00)"},
		{testNow.Add(-10 * 24 * time.Hour), "1 week ago (Feb 23 @ 12:00)"},
		{testNow.Add(-11 * 24 * time.Hour), "2 weeks ago (Feb 22 @ 12:00)"},
		{testNow.Add(-15 * 24 * time.Hour), "2 weeks ago (Feb 18 @ 12:00)"},
		{testNow.Add(-44 * 24 * time.Hour), "1 month ago (Jan 20 @ 12:00)"},
		{testNow.Add(-45 * 24 * time.Hour), "2 months ago (Jan 19 @ 12:00)"},
		{testNow.Add(-364 * 24 * time.Hour), "12 months ago (Mar 6 @ 12:00)"},
		{testNow.Add(-365 * 24 * time.Hour), "1 year ago (Mar 5 @ 12:00)"},
		{testNow.Add(-548 * 24 * time.Hour), "2 years ago (Sep 3 @ 12:00)"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatDate(tc.modified, testNow))
	}
}

func TestGetRevisionsSummaries(t *testing.T) {
	f := newFixture(t)
	docID := f.createDocument(t, true, builderData)
	older := f.createRevision(t, docID, post.RevisionName(docID, false), 1, testNow.Add(-10*time.Minute), builderData)
	newer := f.createRevision(t, docID, post.RevisionName(docID, true), 2, testNow.Add(-2*time.Minute), builderData)
	// Revisions without builder data are not listed.
	f.createRevision(t, docID, post.RevisionName(docID, false), 1, testNow, "")

	summaries, err := f.manager.GetRevisions(requestContext(0, 1), docID, db2.PostQuery{})
	require.NoError(t, err)

	want := []Summary{
		{ID: newer, Author: "Author B", Date: "2 mins ago (Mar 4 @ 11:58)", Type: TypeAutosave, Gravatar: "<img class='avatar'>"},
		{ID: older, Author: "Author A", Date: "10 mins ago (Mar 4 @ 11:50)", Type: TypeRevision, Gravatar: "<img class='avatar'>"},
	}
	if diff := cmp.Diff(want, summaries); diff != "" {
		t.Errorf("GetRevisions() mismatch (-want +got):\n%s", diff)
	}
}

func TestGetRevisionsDatesFollowTheRequestLocale(t *testing.T) {
	f := newFixture(t)
	manager := NewManager(Options{
		Store:      f.docs,
		Authors:    f.authors,
		PostTypes:  f.postTypes,
		Translator: utils.NewTranslator(os.DirFS("../.."), "en"),
		Now:        func() time.Time { return testNow },
	})
	docID := f.createDocument(t, true, builderData)
	f.createRevision(t, docID, post.RevisionName(docID, false), 1, testNow.Add(-90*time.Minute), builderData)
	f.createRevision(t, docID, post.RevisionName(docID, false), 1, testNow.Add(-45*24*time.Hour), builderData)

	cases := map[string][]string{
		"de": {"vor 2 Stunden (4. März @ 10:30)", "vor 2 Monaten (19. Jan. @ 12:00)"},
		"fr": {"il y a 2 heures (4 mars @ 10:30)", "il y a 2 mois (19 janv. @ 12:00)"},
		"en": {"2 hours ago (Mar 4 @ 10:30)", "2 months ago (Jan 19 @ 12:00)"},
		// Unknown locales fall back to English.
		"xx": {"2 hours ago (Mar 4 @ 10:30)", "2 months ago (Jan 19 @ 12:00)"},
	}
	for locale, want := range cases {
		ctx := requestContext(0, 1)
		request.FromContext(ctx).SetLocale(locale)

		summaries, err := manager.GetRevisions(ctx, docID, db2.PostQuery{})
		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, want, []string{summaries[0].Date, summaries[1].Date}, locale)
	}
}

func TestGetRevisionsUsesCurrentDocument(t *testing.T) {
	f := newFixture(t)
	docID := f.createDocument(t, true, builderData)
	revisionID := f.createRevision(t, docID, post.RevisionName(docID, false), 1, testNow, builderData)

	summaries, err := f.manager.GetRevisions(requestContext(docID, 1), 0, db2.PostQuery{})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, revisionID, summaries[0].ID)
}

func TestGetRevisionsOfUnknownDocumentIsEmpty(t *testing.T) {
	f := newFixture(t)

	summaries, err := f.manager.GetRevisions(requestContext(0, 1), 999, db2.PostQuery{})
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.NotNil(t, summaries)

	raw, err := f.manager.GetRawRevisions(requestContext(0, 1), 999, db2.PostQuery{})
	require.NoError(t, err)
	assert.Empty(t, raw)

	summaries, err = f.manager.GetRevisions(requestContext(0, 1), 0, db2.PostQuery{})
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestGetRawRevisionsReturnsHostSequence(t *testing.T) {
	f := newFixture(t)
	docID := f.createDocument(t, true, builderData)
	for i := 0; i < 5; i++ {
		f.createRevision(t, docID, post.RevisionName(docID, false), 1, testNow.Add(time.Duration(-i)*time.Minute), builderData)
	}

	raw, err := f.manager.GetRawRevisions(requestContext(0, 1), docID, db2.PostQuery{PostsPerPage: 3})
	require.NoError(t, err)

	host, err := f.docs.GetRevisions(docID, db2.PostQuery{PostsPerPage: 3, MetaKey: post.MetaBuilderData})
	require.NoError(t, err)
	assert.Len(t, raw, 3)
	if diff := cmp.Diff(host, raw); diff != "" {
		t.Errorf("GetRawRevisions() mismatch (-host +got):\n%s", diff)
	}

	all, err := f.manager.GetRawRevisions(requestContext(0, 1), docID, db2.PostQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestGetRawRevisionsCapsAtMaximum(t *testing.T) {
	f := newFixture(t)
	docID := f.createDocument(t, true, builderData)
	for i := 0; i < MaxRevisionsToDisplay+5; i++ {
		f.createRevision(t, docID, post.RevisionName(docID, false), 1, testNow.Add(time.Duration(-i)*time.Second), builderData)
	}

	raw, err := f.manager.GetRawRevisions(requestContext(0, 1), docID, db2.PostQuery{})
	require.NoError(t, err)
	assert.Len(t, raw, MaxRevisionsToDisplay)

	all, err := f.manager.GetRawRevisions(requestContext(0, 1), docID, db2.PostQuery{PostsPerPage: -1})
	require.NoError(t, err)
	assert.Len(t, all, MaxRevisionsToDisplay+5)
}

func TestGetRevisionIDs(t *testing.T) {
	f := newFixture(t)
	docID := f.createDocument(t, true, builderData)
	first := f.createRevision(t, docID, post.RevisionName(docID, false), 1, testNow.Add(-time.Hour), builderData)
	second := f.createRevision(t, docID, post.RevisionName(docID, false), 1, testNow, builderData)

	ids, err := f.manager.GetRevisionIDs(requestContext(0, 1), docID, db2.PostQuery{})
	require.NoError(t, err)
	assert.Equal(t, []int64{second, first}, ids)
}

func TestAuthorCacheIsScopedToOneListing(t *testing.T) {
	f := newFixture(t)
	docID := f.createDocument(t, true, builderData)
	f.createRevision(t, docID, post.RevisionName(docID, false), 1, testNow.Add(-time.Minute), builderData)
	f.createRevision(t, docID, post.RevisionName(docID, false), 1, testNow.Add(-2*time.Minute), builderData)
	f.createRevision(t, docID, post.RevisionName(docID, false), 2, testNow.Add(-3*time.Minute), builderData)

	_, err := f.manager.GetRevisions(requestContext(0, 1), docID, db2.PostQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, f.authors.avatarCalls[1])
	assert.Equal(t, 1, f.authors.nameCalls[1])
	assert.Equal(t, 1, f.authors.avatarCalls[2])
	assert.Equal(t, 1, f.authors.nameCalls[2])

	_, err = f.manager.GetRevisions(requestContext(0, 1), docID, db2.PostQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, f.authors.avatarCalls[1])
	assert.Equal(t, 2, f.authors.nameCalls[1])
}
