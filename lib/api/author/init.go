package author

import (
	"strconv"

	"github.com/ether/builder-revisions/lib"
	apiError "github.com/ether/builder-revisions/lib/api/errors"
	"github.com/ether/builder-revisions/lib/author"
	"github.com/ether/builder-revisions/lib/db"
	"github.com/ether/builder-revisions/lib/revisions"
	"github.com/gofiber/fiber/v2"
)

type CreateDto struct {
	Login       string `json:"login" validate:"required"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email" validate:"omitempty,email"`
}

type Response struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar"`
}

func toResponse(a author.Author) Response {
	return Response{
		ID:          a.Id,
		Login:       a.Login,
		DisplayName: a.DisplayName,
		Avatar:      author.AvatarMarkup(a.Email, revisions.AvatarSize),
	}
}

func Init(store *lib.InitStore) {
	store.C.Post("/authors", func(c *fiber.Ctx) error {
		var dto CreateDto
		if err := c.BodyParser(&dto); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(apiError.Error{
				Message: "Invalid request " + err.Error(),
				Error:   400,
			})
		}
		if err := store.Validator.Struct(dto); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(apiError.ValidationError)
		}
		if dto.DisplayName == "" {
			dto.DisplayName = dto.Login
		}

		created, err := store.AuthorManager.CreateAuthor(dto.Login, dto.DisplayName, dto.Email)
		if err != nil {
			store.Logger.Errorw("failed to create author", "login", dto.Login, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(apiError.InternalServerError)
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(*created))
	})

	store.C.Get("/authors/:authorId", func(c *fiber.Ctx) error {
		authorID, err := strconv.ParseInt(c.Params("authorId"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(apiError.NewInvalidParamError("authorId"))
		}

		foundAuthor, err := store.AuthorManager.GetAuthor(authorID)
		if err != nil {
			if err.Error() == db.UserNotFoundError {
				return c.Status(fiber.StatusNotFound).JSON(apiError.AuthorNotFoundError)
			}
			return c.Status(fiber.StatusInternalServerError).JSON(apiError.InternalServerError)
		}
		return c.JSON(toResponse(*foundAuthor))
	})
}
