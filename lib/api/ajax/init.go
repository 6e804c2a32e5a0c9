package ajax

import (
	"github.com/ether/builder-revisions/lib"
	apiError "github.com/ether/builder-revisions/lib/api/errors"
	"github.com/ether/builder-revisions/lib/hooks"
	"github.com/ether/builder-revisions/lib/hooks/events"
	"github.com/ether/builder-revisions/lib/request"
	"github.com/ether/builder-revisions/lib/utils"
	"github.com/gofiber/fiber/v2"
)

const Route = "/ajax"

type Dto struct {
	Action string `form:"action" json:"action" validate:"required"`
	ID     ID     `form:"id" json:"id"`
	Nonce  string `form:"_nonce" json:"_nonce"`
}

// Init mounts the ajax dispatcher. Every request is handed to the hooks
// subscribed to its action, the first one that sets a response answers it.
func Init(store *lib.InitStore) {
	store.C.Post(Route, func(c *fiber.Ctx) error {
		if !utils.IsAjax(c) {
			return c.Status(fiber.StatusBadRequest).JSON(apiError.NotAjaxRequestError)
		}

		var dto Dto
		if err := c.BodyParser(&dto); err != nil {
			store.Logger.Debugw("unparseable ajax body", "error", err)
			return c.Status(fiber.StatusBadRequest).JSON(apiError.InvalidRequestError)
		}
		if dto.Action == "" {
			dto.Action = c.Query("action")
		}
		if err := store.Validator.Struct(dto); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(apiError.NewMissingParamError("action"))
		}

		hookName := hooks.AjaxAction(dto.Action)
		if !store.Hooks.HasHooks(hookName) {
			store.Logger.Debugw("no handler for ajax action", "action", dto.Action)
			return c.Status(fiber.StatusBadRequest).JSON(apiError.UnknownActionError)
		}

		ctx := c.UserContext()
		ajaxCtx := &events.AjaxContext{
			Ctx:    ctx,
			Action: dto.Action,
			Request: events.AjaxRequest{
				ID:     string(dto.ID),
				Nonce:  dto.Nonce,
				UserID: request.FromContext(ctx).UserID(),
			},
		}
		store.Hooks.ExecuteHooks(hookName, ajaxCtx)

		if ajaxCtx.Response == nil {
			store.Logger.Warnw("ajax action left the request unanswered", "action", dto.Action)
			return c.Status(fiber.StatusInternalServerError).JSON(apiError.InternalServerError)
		}
		status := ajaxCtx.Response.Status
		if status == 0 {
			status = fiber.StatusOK
		}
		return c.Status(status).JSON(ajaxCtx.Response)
	})
}
