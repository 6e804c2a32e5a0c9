package events

import "context"

// RevisionCreatedContext is passed to the revision.created hook after the host
// stored a new revision.
type RevisionCreatedContext struct {
	Ctx        context.Context
	RevisionID int64
}

// RevisionRestoredContext is passed to the revision.restored hook. Callbacks
// report failures through Err.
type RevisionRestoredContext struct {
	Ctx        context.Context
	DocumentID int64
	RevisionID int64
	Err        error
}

// PostHasChangedContext lets callbacks force the creation of a revision for a
// save that did not change title or content.
type PostHasChangedContext struct {
	Ctx        context.Context
	DocumentID int64
	HasChanged bool
}
