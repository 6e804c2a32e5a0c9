package events

import "context"

type InitContext struct {
	Ctx context.Context
}

// BeforeSaveContext is fired before builder data is written.
type BeforeSaveContext struct {
	Ctx        context.Context
	DocumentID int64
	Status     string
	HasChanges bool
}

// SaveReturnDataContext carries the response of a builder save request.
// Callbacks add keys to ReturnData.
type SaveReturnDataContext struct {
	Ctx        context.Context
	DocumentID int64
	ReturnData map[string]any
	Err        error
}

// LocalizeSettingsContext carries the editor bootstrap settings of a document.
type LocalizeSettingsContext struct {
	Ctx        context.Context
	DocumentID int64
	Locale     string
	Settings   map[string]any
	Err        error
}
