package api

import (
	"github.com/driftline-social/driftline/pkg/internal/http/exts"
	"github.com/driftline-social/driftline/pkg/internal/models"
	"github.com/driftline-social/driftline/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func getAccount(c *fiber.Ctx) error {
	name := c.Params("name")

	account, err := services.GetAccountByName(name)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(account)
}

func editMyAccount(c *fiber.Ctx) error {
	if err := EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Nick     string `json:"nick"`
		Headline string `json:"headline"`
		Avatar   string `json:"avatar"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.EditAccountProfile(user, data.Nick, data.Headline, data.Avatar)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(account)
}
