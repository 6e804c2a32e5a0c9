package editor

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/ether/builder-revisions/lib"
	apiError "github.com/ether/builder-revisions/lib/api/errors"
	"github.com/ether/builder-revisions/lib/document"
	"github.com/ether/builder-revisions/lib/hooks/events"
	db2 "github.com/ether/builder-revisions/lib/models/db"
	"github.com/ether/builder-revisions/lib/models/post"
	"github.com/ether/builder-revisions/lib/request"
	"github.com/ether/builder-revisions/lib/revisions"
	"github.com/gofiber/fiber/v2"
)

const NonceHeader = "X-Builder-Nonce"

type SaveDto struct {
	Status string          `json:"status" validate:"required,oneof=draft publish private pending autosave"`
	Data   json.RawMessage `json:"data"`
}

type CreateDocumentDto struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

// documentID parses the :id route parameter and makes it the current
// document of the request.
func documentID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	request.FromContext(c.UserContext()).SetDocumentID(id)
	return id, true
}

func tokenExpired(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(events.AjaxResponse{
		Success: false,
		Data:    revisions.TokenExpiredMessage,
	})
}

func verifyNonce(store *lib.InitStore, c *fiber.Ctx) bool {
	userID := request.FromContext(c.UserContext()).UserID()
	return store.Nonces.Verify(c.Get(NonceHeader), userID, revisions.NonceAction) == nil
}

func documentError(store *lib.InitStore, c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, document.ErrDocumentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(apiError.DocumentNotFoundError)
	case errors.Is(err, document.ErrRevisionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(apiError.RevisionNotFoundError)
	default:
		store.Logger.Errorw("editor request failed", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(apiError.InternalServerError)
	}
}

func Init(store *lib.InitStore) {
	store.C.Post("/documents", func(c *fiber.Ctx) error {
		var dto CreateDocumentDto
		if err := c.BodyParser(&dto); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(apiError.Error{
				Message: "Invalid request " + err.Error(),
				Error:   400,
			})
		}
		if err := store.Validator.Struct(dto); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(apiError.NewMissingParamError("title"))
		}
		if dto.Type == post.TypeRevision {
			return c.Status(fiber.StatusBadRequest).JSON(apiError.NewInvalidParamError("type"))
		}

		created, err := store.Documents.CreateDocument(post.Post{
			Type:     dto.Type,
			Title:    dto.Title,
			Content:  dto.Content,
			AuthorID: request.FromContext(c.UserContext()).UserID(),
		})
		if err != nil {
			return documentError(store, c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	store.C.Get("/editor/:id/settings", func(c *fiber.Ctx) error {
		docID, ok := documentID(c)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(apiError.NewInvalidParamError("id"))
		}
		ctx := c.UserContext()

		nonce, err := store.Nonces.Create(request.FromContext(ctx).UserID(), revisions.NonceAction)
		if err != nil {
			return documentError(store, c, err)
		}

		settings, err := store.Documents.EditorSettings(ctx, docID, map[string]any{
			"ajax_url": "/ajax",
			"nonce":    nonce,
		})
		if err != nil {
			return documentError(store, c, err)
		}
		return c.JSON(settings)
	})

	store.C.Get("/editor/:id/revisions", func(c *fiber.Ctx) error {
		docID, ok := documentID(c)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(apiError.NewInvalidParamError("id"))
		}

		summaries, err := store.Revisions.GetRevisions(c.UserContext(), docID, db2.PostQuery{})
		if err != nil {
			return documentError(store, c, err)
		}
		return c.JSON(events.AjaxResponse{Success: true, Data: summaries})
	})

	store.C.Post("/editor/:id/save", func(c *fiber.Ctx) error {
		docID, ok := documentID(c)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(apiError.NewInvalidParamError("id"))
		}
		if !verifyNonce(store, c) {
			return tokenExpired(c)
		}

		var dto SaveDto
		if err := c.BodyParser(&dto); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(apiError.Error{
				Message: "Invalid request " + err.Error(),
				Error:   400,
			})
		}
		if err := store.Validator.Struct(dto); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(apiError.NewInvalidParamError("status"))
		}

		returnData, err := store.Documents.Save(c.UserContext(), docID, document.SaveRequest{
			Status: dto.Status,
			Data:   string(dto.Data),
		})
		if err != nil {
			return documentError(store, c, err)
		}
		return c.JSON(events.AjaxResponse{Success: true, Data: returnData})
	})

	store.C.Post("/editor/:id/restore/:revisionId", func(c *fiber.Ctx) error {
		docID, ok := documentID(c)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(apiError.NewInvalidParamError("id"))
		}
		revisionID, err := strconv.ParseInt(c.Params("revisionId"), 10, 64)
		if err != nil || revisionID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(apiError.NewInvalidParamError("revisionId"))
		}
		if !verifyNonce(store, c) {
			return tokenExpired(c)
		}

		if err := store.Documents.RestoreRevision(c.UserContext(), docID, revisionID); err != nil {
			return documentError(store, c, err)
		}
		return c.JSON(events.AjaxResponse{Success: true, Data: fiber.Map{
			"document_id": docID,
			"revision_id": revisionID,
		}})
	})
}
