package api

import (
	"github.com/driftline-social/driftline/pkg/internal/http/exts"
	"github.com/driftline-social/driftline/pkg/internal/models"
	"github.com/driftline-social/driftline/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func createComment(c *fiber.Ctx) error {
	if err := EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	postID, _ := c.ParamsInt("postId", 0)

	var data struct {
		Body string `json:"body" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.AddComment(uint(postID), user, data.Body)
	if err != nil {
		return mapServiceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func editComment(c *fiber.Ctx) error {
	if err := EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	postID, _ := c.ParamsInt("postId", 0)
	commentID, _ := c.ParamsInt("commentId", 0)

	var data struct {
		Body string `json:"body" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	comment, err := services.EditComment(uint(postID), uint(commentID), user, data.Body)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(comment)
}
