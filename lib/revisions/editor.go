package revisions

import (
	"context"
	"fmt"

	db2 "github.com/ether/builder-revisions/lib/models/db"
	"github.com/ether/builder-revisions/lib/models/post"
	"github.com/ether/builder-revisions/lib/request"
)

const RevisionsHelpURL = "https://codex.wordpress.org/Revisions#Revision_Options"

var defaultStrings = map[string]string{
	"revision_history":     "Revision History",
	"no_revisions_1":       "Revision history lets you save your previous versions of your work, and restore them any time.",
	"no_revisions_2":       "Start designing your page and you'll be able to see the entire revision history here.",
	"revisions_disabled_1": "It looks like the post revision feature is unavailable in your website.",
	"revisions_disabled_2": "Learn more about <a target=\"_blank\" href=\"%s\">revisions</a>",
	"revision":             "Revision",
}

// AddRevisionSupportForAllPostTypes turns on revisions for every post type
// edited with the builder.
func (m *Manager) AddRevisionSupportForAllPostTypes() {
	for _, postType := range m.postTypes.TypesSupporting(post.SupportBuilder) {
		m.postTypes.AddSupport(postType, post.SupportRevisions)
	}
}

// BeforeSave latches the request so that the save creates a revision carrying
// the builder data.
func (m *Manager) BeforeSave(ctx context.Context, status string, hasChanges bool) {
	if !hasChanges {
		return
	}
	request.FromContext(ctx).HandleRevision()
	m.logger.Debugw("handling revision on save", "status", status)
}

// SaveBuilderReturnData adds the latest revision and all revision ids to the
// response of a builder save. Nothing is added when there is no revision.
func (m *Manager) SaveBuilderReturnData(ctx context.Context, docID int64, data map[string]any) error {
	latest, err := m.GetRevisions(ctx, docID, db2.PostQuery{PostsPerPage: 1})
	if err != nil {
		return err
	}
	ids, err := m.GetRevisionIDs(ctx, docID, db2.PostQuery{})
	if err != nil {
		return err
	}

	if len(latest) > 0 {
		data["last_revision"] = latest[0]
		data["revisions_ids"] = ids
	}
	return nil
}

// EditorSettings merges the revision list, the revision availability and the
// panel strings into the editor settings.
func (m *Manager) EditorSettings(ctx context.Context, settings map[string]any, docID int64) (map[string]any, error) {
	summaries, err := m.GetRevisions(ctx, 0, db2.PostQuery{})
	if err != nil {
		return nil, err
	}

	enabled := false
	if docID != 0 {
		doc, err := m.store.GetDocument(docID)
		if err == nil && doc != nil {
			enabled = m.revisionsEnabled(*doc)
		}
	}

	return mergeRecursive(settings, map[string]any{
		"revisions":         summaries,
		"revisions_enabled": enabled,
		"i18n":              m.panelStrings(request.FromContext(ctx).Locale()),
	}), nil
}

func (m *Manager) translate(locale string, key string) string {
	if m.translator != nil {
		if translated, ok := m.translator.Translate(locale, "revisions."+key); ok && translated != "" {
			return translated
		}
	}
	if fallback, ok := defaultStrings[key]; ok {
		return fallback
	}
	return dateStrings[key]
}

func (m *Manager) panelStrings(locale string) map[string]any {
	out := make(map[string]any, len(defaultStrings))
	for key := range defaultStrings {
		out[key] = m.translate(locale, key)
	}
	out["revisions_disabled_2"] = fmt.Sprintf(m.translate(locale, "revisions_disabled_2"), RevisionsHelpURL)
	return out
}

// mergeRecursive returns base with override applied on top. Nested maps are
// merged key by key, every other value is replaced.
func mergeRecursive(base map[string]any, override map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		baseMap, baseIsMap := merged[k].(map[string]any)
		overrideMap, overrideIsMap := v.(map[string]any)
		if baseIsMap && overrideIsMap {
			merged[k] = mergeRecursive(baseMap, overrideMap)
			continue
		}
		merged[k] = v
	}
	return merged
}
