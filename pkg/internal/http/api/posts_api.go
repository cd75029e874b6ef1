package api

import (
	"github.com/driftline-social/driftline/pkg/internal/database"
	"github.com/driftline-social/driftline/pkg/internal/http/exts"
	"github.com/driftline-social/driftline/pkg/internal/models"
	"github.com/driftline-social/driftline/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func universalPostFilter(c *fiber.Ctx, tx *gorm.DB) (*gorm.DB, error) {
	if len(c.Query("author")) > 0 {
		author, err := services.GetAccountByName(c.Query("author"))
		if err != nil {
			return tx, mapServiceError(err)
		}
		tx = tx.Where("posts.account_id = ?", author.ID)
	}

	if probe := c.Query("probe"); len(probe) > 0 {
		tx = services.FilterPostWithFuzzySearch(tx, probe)
	}

	return tx, nil
}

func listArticle(c *fiber.Ctx) error {
	take := c.QueryInt("take", services.DefaultFeedPageSize)
	offset := c.QueryInt("offset", 0)

	tx, err := universalPostFilter(c, database.C)
	if err != nil {
		return err
	}

	count, err := services.CountPost(tx)
	if err != nil {
		return mapServiceError(err)
	}

	items, err := services.ListPost(tx, take, offset, "posts.created_at DESC, posts.id DESC")
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func getArticle(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(item)
}

func createArticle(c *fiber.Ctx) error {
	if err := EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Title       string   `json:"title" validate:"required"`
		Body        string   `json:"body" validate:"required"`
		Image       *string  `json:"image"`
		Attachments []string `json:"attachments"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewPost(user, data.Title, data.Body, data.Image, data.Attachments)
	if err != nil {
		return mapServiceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func editArticle(c *fiber.Ctx) error {
	if err := EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	id, _ := c.ParamsInt("postId", 0)

	var data struct {
		Body string `json:"body" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return mapServiceError(err)
	}

	item, err = services.EditPost(item, user, data.Body)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(item)
}

func deleteArticle(c *fiber.Ctx) error {
	if err := EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return mapServiceError(err)
	}

	if err := services.DeletePost(item, user); err != nil {
		return mapServiceError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
