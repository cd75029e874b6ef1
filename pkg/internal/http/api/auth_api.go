package api

import (
	"time"

	"github.com/driftline-social/driftline/pkg/internal/http/exts"
	"github.com/driftline-social/driftline/pkg/internal/models"
	"github.com/driftline-social/driftline/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

const SessionCookieName = "driftline_session"

func doRegister(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" validate:"required"`
		Nick     string `json:"nick"`
		Password string `json:"password" validate:"required,min=4"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.RegisterAccount(data.Name, data.Nick, data.Password)
	if err != nil {
		return mapServiceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(account)
}

func doLogin(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.Authenticate(data.Name, data.Password)
	if err != nil {
		return mapServiceError(err)
	}

	token, err := services.IssueSession(account)
	if err != nil {
		return mapServiceError(err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{
		"token":   token,
		"account": account,
	})
}

func doLogout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.SendStatus(fiber.StatusNoContent)
}

func getMyAccount(c *fiber.Ctx) error {
	if err := EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	return c.JSON(user)
}
