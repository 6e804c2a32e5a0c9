package revisions

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ether/builder-revisions/lib/hooks/events"
	"github.com/ether/builder-revisions/lib/metrics"
)

const (
	MissingRevisionIDMessage = "You must set the revision ID."
	InvalidRevisionMessage   = "Invalid Revision."
	MissingIDMessage         = "You must set the id."
	CannotDeleteMessage      = "Cannot delete this Revision."
	TokenExpiredMessage      = "token_expired"
)

func failure(status int, message string) events.AjaxResponse {
	return events.AjaxResponse{Success: false, Data: message, Status: status}
}

func (m *Manager) verifyNonce(req events.AjaxRequest) *events.AjaxResponse {
	if m.nonces == nil {
		return nil
	}
	if err := m.nonces.Verify(req.Nonce, req.UserID, NonceAction); err != nil {
		m.logger.Debugw("rejected ajax nonce", "user", req.UserID, "error", err)
		response := failure(http.StatusForbidden, TokenExpiredMessage)
		return &response
	}
	return nil
}

func record(action string, response events.AjaxResponse) events.AjaxResponse {
	result := "failure"
	if response.Success {
		result = "success"
	}
	metrics.AjaxRequests.WithLabelValues(action, result).Inc()
	return response
}

// OnRevisionDataRequest answers with the builder data stored on a revision.
// The stored blob is passed through as is.
func (m *Manager) OnRevisionDataRequest(ctx context.Context, req events.AjaxRequest) events.AjaxResponse {
	if rejected := m.verifyNonce(req); rejected != nil {
		return record(GetRevisionDataAction, *rejected)
	}
	if req.ID == "" {
		return record(GetRevisionDataAction, failure(http.StatusBadRequest, MissingRevisionIDMessage))
	}

	revisionID, err := strconv.ParseInt(req.ID, 10, 64)
	if err != nil {
		return record(GetRevisionDataAction, failure(http.StatusNotFound, InvalidRevisionMessage))
	}

	data, err := m.store.GetRawBuilderMetadata(revisionID)
	if err != nil {
		m.logger.Errorw("failed to read revision data", "revision", revisionID, "error", err)
		return record(GetRevisionDataAction, failure(http.StatusNotFound, InvalidRevisionMessage))
	}
	if data == "" {
		return record(GetRevisionDataAction, failure(http.StatusNotFound, InvalidRevisionMessage))
	}

	var payload any = data
	if json.Valid([]byte(data)) {
		payload = json.RawMessage(data)
	}
	return record(GetRevisionDataAction, events.AjaxResponse{Success: true, Data: payload, Status: http.StatusOK})
}

// OnDeleteRevisionRequest deletes a revision through the host.
func (m *Manager) OnDeleteRevisionRequest(ctx context.Context, req events.AjaxRequest) events.AjaxResponse {
	if rejected := m.verifyNonce(req); rejected != nil {
		return record(DeleteRevisionAction, *rejected)
	}
	if req.ID == "" || req.ID == "0" {
		return record(DeleteRevisionAction, failure(http.StatusBadRequest, MissingIDMessage))
	}

	revisionID, err := strconv.ParseInt(req.ID, 10, 64)
	if err != nil {
		return record(DeleteRevisionAction, failure(http.StatusNotFound, CannotDeleteMessage))
	}

	deleted, err := m.store.DeleteRevision(revisionID)
	if err != nil {
		m.logger.Errorw("failed to delete revision", "revision", revisionID, "error", err)
		return record(DeleteRevisionAction, failure(http.StatusInternalServerError, CannotDeleteMessage))
	}
	if !deleted {
		return record(DeleteRevisionAction, failure(http.StatusNotFound, CannotDeleteMessage))
	}
	return record(DeleteRevisionAction, events.AjaxResponse{Success: true, Status: http.StatusOK})
}
