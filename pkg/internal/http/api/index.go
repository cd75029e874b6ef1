package api

import (
	"errors"

	"github.com/driftline-social/driftline/pkg/internal/models"
	"github.com/driftline-social/driftline/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		auth := api.Group("/auth").Name("Auth API")
		{
			auth.Post("/register", doRegister)
			auth.Post("/login", doLogin)
			auth.Post("/logout", doLogout)
		}

		api.Get("/users/me", getMyAccount)
		api.Put("/users/me", editMyAccount)
		api.Get("/users/:name", getAccount)

		api.Get("/following", listFollowing)
		api.Put("/following/:name", doFollow)
		api.Delete("/following/:name", doUnfollow)

		api.Get("/feed", getFeed)

		articles := api.Group("/articles").Name("Articles API")
		{
			articles.Get("/", listArticle)
			articles.Post("/", createArticle)
			articles.Get("/:postId", getArticle)
			articles.Put("/:postId", editArticle)
			articles.Delete("/:postId", deleteArticle)

			articles.Post("/:postId/comments", createComment)
			articles.Put("/:postId/comments/:commentId", editComment)
		}
	}
}

func EnsureAuthenticated(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(models.Account); !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "you need to be authenticated first")
	}
	return nil
}

// mapServiceError translates the service error taxonomy onto status codes.
func mapServiceError(err error) *fiber.Error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrNotAuthor):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrSelfFollow), errors.Is(err, services.ErrAlreadyFollowing):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
