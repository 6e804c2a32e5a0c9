package events

import "context"

type AjaxRequest struct {
	ID     string `form:"id" json:"id"`
	Nonce  string `form:"_nonce" json:"_nonce"`
	UserID int64  `form:"-" json:"-"`
}

// AjaxResponse mirrors the {"success": bool, "data": any} envelope the editor
// expects.
type AjaxResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
	// Status is the HTTP status the response is sent with.
	Status int `json:"-"`
}

// AjaxContext is passed to the "ajax:<action>" hooks. The first callback that
// sets Response handles the request.
type AjaxContext struct {
	Ctx      context.Context
	Action   string
	Request  AjaxRequest
	Response *AjaxResponse
}
