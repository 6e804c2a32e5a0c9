// Package request carries the per-request state the host threads through
// hooks: the document being edited, the acting user and the latch that turns
// a builder save into a revision.
package request

import (
	"context"
	"sync"
)

type contextKey struct{}

type State struct {
	mu             sync.Mutex
	documentID     int64
	userID         int64
	locale         string
	revisionOnSave bool
}

func NewState(documentID int64, userID int64) *State {
	return &State{documentID: documentID, userID: userID}
}

func WithState(ctx context.Context, state *State) context.Context {
	return context.WithValue(ctx, contextKey{}, state)
}

// FromContext returns the request state, or an empty detached state when the
// caller did not attach one.
func FromContext(ctx context.Context) *State {
	if ctx != nil {
		if state, ok := ctx.Value(contextKey{}).(*State); ok {
			return state
		}
	}
	return &State{}
}

func (s *State) DocumentID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.documentID
}

func (s *State) SetDocumentID(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documentID = id
}

func (s *State) UserID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

func (s *State) Locale() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale
}

func (s *State) SetLocale(locale string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locale = locale
}

// HandleRevision latches the request: every later save in it is treated as
// changed and its revisions receive a builder snapshot. There is no way back.
func (s *State) HandleRevision() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revisionOnSave = true
}

func (s *State) RevisionOnSave() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revisionOnSave
}
