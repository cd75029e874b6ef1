package api

import (
	"github.com/driftline-social/driftline/pkg/internal/models"
	"github.com/driftline-social/driftline/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

// getFeed resolves one page of the viewer's feed. The visible author set is
// always derived from the stored follow graph of the authenticated viewer,
// never from request input.
func getFeed(c *fiber.Ctx) error {
	if err := EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	query := services.FeedQuery{
		ViewerID: user.ID,
		Search:   c.Query("probe"),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("take", services.DefaultFeedPageSize),
	}

	page, err := services.ResolveFeed(query)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(page)
}
