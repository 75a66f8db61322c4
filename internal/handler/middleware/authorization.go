package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole verifies that the resolved principal holds one of the
// named roles. The role was re-fetched during token resolution, so the
// check runs against the current assignment, not the token snapshot.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		for _, role := range roles {
			if principal.Role.Name == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "insufficient permissions",
		})
	}
}

// RequireAdmin is a convenience middleware for the Admin role.
func RequireAdmin() fiber.Handler {
	return RequireRole("Admin")
}
