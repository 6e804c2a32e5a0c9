package document

import (
	"context"
	"fmt"

	"github.com/ether/builder-revisions/lib/hooks"
	"github.com/ether/builder-revisions/lib/hooks/events"
	db2 "github.com/ether/builder-revisions/lib/models/db"
	"github.com/ether/builder-revisions/lib/models/post"
	"github.com/ether/builder-revisions/lib/request"
)

const BuilderVersion = "1.0.0"

type SaveRequest struct {
	Status string
	Data   string
}

// Init registers the post types the builder edits and fires the init event.
func (m *Manager) Init(ctx context.Context, builderPostTypes []string) {
	for _, postType := range builderPostTypes {
		m.postTypes.Register(postType, post.SupportBuilder)
	}
	m.hook.ExecuteHooks(hooks.InitString, &events.InitContext{Ctx: ctx})
	m.logger.Infof("Initialized builder for post types %v", builderPostTypes)
}

// Save stores builder data for a document. Autosaves go to the autosave
// revision of the current user, every other status updates the document and
// may create a revision.
func (m *Manager) Save(ctx context.Context, docID int64, req SaveRequest) (map[string]any, error) {
	doc, err := m.GetDocument(docID)
	if err != nil {
		return nil, err
	}

	previous, err := m.GetRawBuilderMetadata(docID)
	if err != nil {
		return nil, err
	}

	m.hook.ExecuteHooks(hooks.BeforeSaveString, &events.BeforeSaveContext{
		Ctx:        ctx,
		DocumentID: docID,
		Status:     req.Status,
		HasChanges: previous != req.Data,
	})

	if req.Status == post.StatusAutosave {
		if err := m.autosave(ctx, *doc, req.Data); err != nil {
			return nil, err
		}
	} else {
		if err := m.writeBuilderData(docID, req.Data); err != nil {
			return nil, err
		}
		doc.Status = req.Status
		doc.Modified = m.Now()
		if _, err := m.store.SavePost(doc.ToDB()); err != nil {
			return nil, fmt.Errorf("failed to update document %d: %w", docID, err)
		}
		if _, err := m.SaveRevision(ctx, *doc); err != nil {
			return nil, err
		}
	}

	returnCtx := &events.SaveReturnDataContext{
		Ctx:        ctx,
		DocumentID: docID,
		ReturnData: map[string]any{
			"status": req.Status,
		},
	}
	m.hook.ExecuteHooks(hooks.SaveBuilderReturnDataString, returnCtx)
	if returnCtx.Err != nil {
		return nil, returnCtx.Err
	}
	return returnCtx.ReturnData, nil
}

func (m *Manager) writeBuilderData(id int64, data string) error {
	if err := m.SetBuiltWithBuilder(id, true); err != nil {
		return err
	}
	if err := m.store.SetPostMeta(id, post.MetaBuilderVersion, BuilderVersion); err != nil {
		return err
	}
	return m.store.SetPostMeta(id, post.MetaBuilderData, data)
}

func (m *Manager) autosave(ctx context.Context, doc post.Post, data string) error {
	userID := request.FromContext(ctx).UserID()

	existing, err := m.GetRevisions(doc.ID, db2.PostQuery{})
	if err != nil {
		return err
	}
	for _, revision := range existing {
		if revision.IsAutosave() && revision.AuthorID == userID {
			revision.Modified = m.Now()
			if _, err := m.store.SavePost(revision.ToDB()); err != nil {
				return fmt.Errorf("failed to update autosave %d: %w", revision.ID, err)
			}
			return m.writeBuilderData(revision.ID, data)
		}
	}

	revision, err := m.createRevision(ctx, doc, true)
	if err != nil {
		return err
	}
	return m.writeBuilderData(revision.ID, data)
}

// SaveRevision snapshots doc into a new revision when revisions are enabled
// for it and it changed since the latest revision. It returns nil when no
// revision was created.
func (m *Manager) SaveRevision(ctx context.Context, doc post.Post) (*post.Post, error) {
	if !m.RevisionsEnabled(doc) {
		return nil, nil
	}

	revisions, err := m.GetRevisions(doc.ID, db2.PostQuery{})
	if err != nil {
		return nil, err
	}
	var latest *post.Post
	for i := range revisions {
		if !revisions[i].IsAutosave() {
			latest = &revisions[i]
			break
		}
	}

	if latest != nil && latest.Title == doc.Title && latest.Content == doc.Content {
		changed := &events.PostHasChangedContext{Ctx: ctx, DocumentID: doc.ID}
		m.hook.ExecuteHooks(hooks.PostHasChangedString, changed)
		if !changed.HasChanged {
			return nil, nil
		}
	}

	revision, err := m.createRevision(ctx, doc, false)
	if err != nil {
		return nil, err
	}
	if err := m.applyRetention(doc.ID); err != nil {
		return nil, err
	}
	return revision, nil
}

func (m *Manager) createRevision(ctx context.Context, doc post.Post, autosave bool) (*post.Post, error) {
	authorID := request.FromContext(ctx).UserID()
	if authorID == 0 {
		authorID = doc.AuthorID
	}

	revision := post.Post{
		Type:     post.TypeRevision,
		Status:   post.StatusInherit,
		Name:     post.RevisionName(doc.ID, autosave),
		Title:    doc.Title,
		Content:  doc.Content,
		AuthorID: authorID,
		ParentID: doc.ID,
		Modified: m.Now(),
	}
	id, err := m.store.SavePost(revision.ToDB())
	if err != nil {
		return nil, fmt.Errorf("failed to create revision of %d: %w", doc.ID, err)
	}
	revision.ID = id

	m.logger.Debugw("created revision", "revision", id, "document", doc.ID, "autosave", autosave)
	m.hook.ExecuteHooks(hooks.RevisionCreatedString, &events.RevisionCreatedContext{
		Ctx:        ctx,
		RevisionID: id,
	})
	return &revision, nil
}

func (m *Manager) applyRetention(docID int64) error {
	if m.keep < 0 {
		return nil
	}

	revisions, err := m.GetRevisions(docID, db2.PostQuery{})
	if err != nil {
		return err
	}
	kept := 0
	for _, revision := range revisions {
		if revision.IsAutosave() {
			continue
		}
		kept++
		if kept <= m.keep {
			continue
		}
		if _, err := m.DeleteRevision(revision.ID); err != nil {
			return err
		}
	}
	return nil
}

// RestoreRevision rolls docID back to revisionID and fires the restored
// event. Failures reported by the event callbacks are returned.
func (m *Manager) RestoreRevision(ctx context.Context, docID int64, revisionID int64) error {
	doc, err := m.GetDocument(docID)
	if err != nil {
		return err
	}
	revision, err := m.getPost(revisionID)
	if err != nil {
		return err
	}
	if revision == nil || !revision.IsRevision() || revision.ParentID != docID {
		return ErrRevisionNotFound
	}

	doc.Title = revision.Title
	doc.Content = revision.Content
	doc.Modified = m.Now()
	if _, err := m.store.SavePost(doc.ToDB()); err != nil {
		return fmt.Errorf("failed to restore document %d: %w", docID, err)
	}

	restored := &events.RevisionRestoredContext{
		Ctx:        ctx,
		DocumentID: docID,
		RevisionID: revisionID,
	}
	m.hook.ExecuteHooks(hooks.RevisionRestoredString, restored)
	if restored.Err != nil {
		return restored.Err
	}

	m.logger.Infof("Restored document %d to revision %d", docID, revisionID)
	return nil
}

// EditorSettings assembles the settings the editor boots with. base is
// extended with the document and the request locale, then passed through the
// editor.localize_settings event.
func (m *Manager) EditorSettings(ctx context.Context, docID int64, base map[string]any) (map[string]any, error) {
	doc, err := m.GetDocument(docID)
	if err != nil {
		return nil, err
	}

	settings := make(map[string]any, len(base)+3)
	for k, v := range base {
		settings[k] = v
	}
	locale := request.FromContext(ctx).Locale()
	settings["document_id"] = doc.ID
	settings["document_type"] = doc.Type
	settings["locale"] = locale

	localize := &events.LocalizeSettingsContext{
		Ctx:        ctx,
		DocumentID: doc.ID,
		Locale:     locale,
		Settings:   settings,
	}
	m.hook.ExecuteHooks(hooks.EditorLocalizeSettingsString, localize)
	if localize.Err != nil {
		return nil, localize.Err
	}
	return localize.Settings, nil
}
