package http

import (
	"strings"

	"github.com/driftline-social/driftline/pkg/internal/http/api"
	"github.com/driftline-social/driftline/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

// authMiddleware resolves the session token (cookie first, bearer header as
// fallback) into the viewer account. Missing or bad tokens just leave the
// request anonymous; handlers that need a viewer check for themselves.
func authMiddleware(c *fiber.Ctx) error {
	token := c.Cookies(api.SessionCookieName)
	if len(token) == 0 {
		if raw := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(raw, "Bearer ") {
			token = strings.TrimPrefix(raw, "Bearer ")
		}
	}

	if len(token) > 0 {
		if user, err := services.VerifySession(token); err == nil {
			c.Locals("user", user)
		}
	}

	return c.Next()
}
