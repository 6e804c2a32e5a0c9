package revisions

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/ether/builder-revisions/lib/hooks"
	"github.com/ether/builder-revisions/lib/hooks/events"
	"github.com/ether/builder-revisions/lib/models/post"
	"github.com/ether/builder-revisions/lib/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevisionDataRequestWithoutID(t *testing.T) {
	f := newFixture(t)

	response := f.manager.OnRevisionDataRequest(requestContext(0, 1), events.AjaxRequest{})
	assert.False(t, response.Success)
	assert.Equal(t, MissingRevisionIDMessage, response.Data)
	assert.Equal(t, http.StatusBadRequest, response.Status)
}

func TestRevisionDataRequestWithoutData(t *testing.T) {
	f := newFixture(t)
	docID := f.createDocument(t, true, builderData)
	revisionID := f.createRevision(t, docID, post.RevisionName(docID, false), 1, testNow, "")

	for _, id := range []string{strconv.FormatInt(revisionID, 10), "777", "abc"} {
		response := f.manager.OnRevisionDataRequest(requestContext(0, 1), events.AjaxRequest{ID: id})
		assert.False(t, response.Success, id)
		assert.Equal(t, InvalidRevisionMessage, response.Data, id)
		assert.Equal(t, http.StatusNotFound, response.Status, id)
	}
}

func TestRevisionDataRequestPassesDataThrough(t *testing.T) {
	f := newFixture(t)
	docID := f.createDocument(t, true, builderData)
	revisionID := f.createRevision(t, docID, post.RevisionName(docID, false), 1, testNow, builderData)

	response := f.manager.OnRevisionDataRequest(requestContext(0, 1), events.AjaxRequest{ID: strconv.FormatInt(revisionID, 10)})
	require.True(t, response.Success)
	assert.Equal(t, json.RawMessage(builderData), response.Data)

	encoded, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":`+builderData+`}`, string(encoded))
}

func TestRevisionDataRequestKeepsNonJSONAsString(t *testing.T) {
	f := newFixture(t)
	docID := f.createDocument(t, true, builderData)
	revisionID := f.createRevision(t, docID, post.RevisionName(docID, false), 1, testNow, "a:1:{i:0;s:0:\"\";}")

	response := f.manager.OnRevisionDataRequest(requestContext(0, 1), events.AjaxRequest{ID: strconv.FormatInt(revisionID, 10)})
	require.True(t, response.Success)
	assert.Equal(t, "a:1:{i:0;s:0:\"\";}", response.Data)
}

func TestDeleteRevisionRequestWithoutID(t *testing.T) {
	f := newFixture(t)

	for _, id := range []string{"", "0"} {
		response := f.manager.OnDeleteRevisionRequest(requestContext(0, 1), events.AjaxRequest{ID: id})
		assert.False(t, response.Success)
		assert.Equal(t, MissingIDMessage, response.Data)
		assert.Equal(t, http.StatusBadRequest, response.Status)
	}
}

func TestDeleteRevisionRequestSuccess(t *testing.T) {
	f := newFixture(t)
	docID := f.createDocument(t, true, builderData)
	revisionID := f.createRevision(t, docID, post.RevisionName(docID, false), 1, testNow, builderData)

	response := f.manager.OnDeleteRevisionRequest(requestContext(0, 1), events.AjaxRequest{ID: strconv.FormatInt(revisionID, 10)})
	assert.True(t, response.Success)
	assert.Nil(t, response.Data)

	encoded, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true}`, string(encoded))

	_, err = f.store.GetPost(revisionID)
	assert.Error(t, err)
}

func TestDeleteRevisionRequestRefusesDocuments(t *testing.T) {
	f := newFixture(t)
	docID := f.createDocument(t, true, builderData)

	response := f.manager.OnDeleteRevisionRequest(requestContext(0, 1), events.AjaxRequest{ID: strconv.FormatInt(docID, 10)})
	assert.False(t, response.Success)
	assert.Equal(t, CannotDeleteMessage, response.Data)

	_, err := f.store.GetPost(docID)
	assert.NoError(t, err)
}

func TestDeleteRevisionRequestHostError(t *testing.T) {
	f := newFixture(t)
	manager := NewManager(Options{Store: failingDeleteStore{f.docs}})

	response := manager.OnDeleteRevisionRequest(requestContext(0, 1), events.AjaxRequest{ID: "12"})
	assert.False(t, response.Success)
	assert.Equal(t, CannotDeleteMessage, response.Data)
	assert.Equal(t, http.StatusInternalServerError, response.Status)
}

func TestAjaxRequestsVerifyNonce(t *testing.T) {
	f := newFixture(t)
	nonces := security.NewNonceManager("secret", time.Hour)
	manager := NewManager(Options{Store: f.docs, Nonces: nonces})

	for _, respond := range []func(events.AjaxRequest) events.AjaxResponse{
		func(req events.AjaxRequest) events.AjaxResponse {
			return manager.OnRevisionDataRequest(requestContext(0, 1), req)
		},
		func(req events.AjaxRequest) events.AjaxResponse {
			return manager.OnDeleteRevisionRequest(requestContext(0, 1), req)
		},
	} {
		response := respond(events.AjaxRequest{ID: "1", Nonce: "forged", UserID: 1})
		assert.False(t, response.Success)
		assert.Equal(t, TokenExpiredMessage, response.Data)
		assert.Equal(t, http.StatusForbidden, response.Status)
	}

	nonce, err := nonces.Create(1, NonceAction)
	require.NoError(t, err)
	response := manager.OnRevisionDataRequest(requestContext(0, 1), events.AjaxRequest{Nonce: nonce, UserID: 1})
	assert.Equal(t, MissingRevisionIDMessage, response.Data)
}

func TestAjaxHooksAreRegisteredOnDemand(t *testing.T) {
	f := newFixture(t)
	f.manager.Register(f.hook, RegisterOptions{})
	assert.False(t, f.hook.HasHooks(hooks.AjaxAction(GetRevisionDataAction)))
	assert.False(t, f.hook.HasHooks(hooks.AjaxAction(DeleteRevisionAction)))

	ajaxHook := hooks.NewHook()
	f.manager.Register(ajaxHook, RegisterOptions{Ajax: true})
	require.True(t, ajaxHook.HasHooks(hooks.AjaxAction(GetRevisionDataAction)))
	require.True(t, ajaxHook.HasHooks(hooks.AjaxAction(DeleteRevisionAction)))

	ajax := &events.AjaxContext{
		Ctx:     requestContext(0, 1),
		Action:  GetRevisionDataAction,
		Request: events.AjaxRequest{},
	}
	ajaxHook.ExecuteHooks(hooks.AjaxAction(GetRevisionDataAction), ajax)
	require.NotNil(t, ajax.Response)
	assert.Equal(t, MissingRevisionIDMessage, ajax.Response.Data)
}
