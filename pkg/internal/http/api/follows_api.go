package api

import (
	"github.com/driftline-social/driftline/pkg/internal/models"
	"github.com/driftline-social/driftline/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func listFollowing(c *fiber.Ctx) error {
	if err := EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	accounts, err := services.ListFollowedAccounts(user.ID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(fiber.Map{
		"following": lo.Map(accounts, func(item models.Account, _ int) string {
			return item.Name
		}),
		"accounts": accounts,
	})
}

func doFollow(c *fiber.Ctx) error {
	if err := EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	target, err := services.GetAccountByName(c.Params("name"))
	if err != nil {
		return mapServiceError(err)
	}

	following, err := services.FollowUser(user, target)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(fiber.Map{
		"following": following,
	})
}

func doUnfollow(c *fiber.Ctx) error {
	if err := EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	target, err := services.GetAccountByName(c.Params("name"))
	if err != nil {
		return mapServiceError(err)
	}

	if err := services.UnfollowUser(user, target); err != nil {
		return mapServiceError(err)
	}

	following, err := services.ListFollowedIDs(user.ID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(fiber.Map{
		"following": following,
	})
}
