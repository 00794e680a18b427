package middleware

import (
	"slices"

	"stitchmes/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// RequireRoles checks that the authenticated user holds one of the allowed roles
func RequireRoles(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		if !slices.Contains(allowed, claims.Role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Insufficient role",
			})
		}

		return c.Next()
	}
}
