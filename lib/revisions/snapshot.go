package revisions

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ether/builder-revisions/lib/metrics"
)

// SaveRevision copies the builder data of the parent document onto a freshly
// created revision. Revisions of documents not built with the builder are
// left alone.
func (m *Manager) SaveRevision(ctx context.Context, revisionID int64) error {
	parent, err := m.store.RevisionParent(revisionID)
	if err != nil {
		return err
	}
	if parent == nil {
		return nil
	}

	builtWith, err := m.store.IsBuiltWithBuilder(parent.ID)
	if err != nil {
		return err
	}
	if !builtWith {
		return nil
	}

	if err := m.store.CopyBuilderMetadata(parent.ID, revisionID); err != nil {
		return err
	}
	metrics.RevisionsCaptured.Inc()
	return nil
}

// RestoreRevision mirrors the builder flag of the revision onto the document
// and, for builder revisions, copies the builder data back and regenerates
// the document stylesheet.
func (m *Manager) RestoreRevision(ctx context.Context, parentID int64, revisionID int64) error {
	builtWith, err := m.store.IsBuiltWithBuilder(revisionID)
	if err != nil {
		return err
	}
	if err := m.store.SetBuiltWithBuilder(parentID, builtWith); err != nil {
		return err
	}
	metrics.RevisionsRestored.WithLabelValues(strconv.FormatBool(builtWith)).Inc()

	if !builtWith {
		return nil
	}

	if err := m.store.CopyBuilderMetadata(revisionID, parentID); err != nil {
		return err
	}
	if err := m.css.Update(parentID); err != nil {
		return fmt.Errorf("failed to regenerate css of %d: %w", parentID, err)
	}
	return nil
}
