package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/domain"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/service"
)

// PrincipalKey is the fiber.Locals key under which the resolved
// principal is stored.
const PrincipalKey = "principal"

// AuthMiddleware extracts the Bearer token and resolves it into the
// acting principal. Resolution re-fetches the user and role from
// storage, so a deactivated user or a renamed role is rejected even
// while its tokens are still within their lifetime.
func AuthMiddleware(authService *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing authorization header",
			})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid authorization header format",
			})
		}

		principal, err := authService.CurrentPrincipal(c.Context(), parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": authErrorMessage(err),
			})
		}

		c.Locals(PrincipalKey, principal)
		return c.Next()
	}
}

func authErrorMessage(err error) string {
	switch err {
	case domain.ErrTokenExpired:
		return "token expired"
	case domain.ErrWrongTokenType:
		return "invalid token type"
	default:
		return "invalid token"
	}
}

// PrincipalFromContext returns the principal stored by AuthMiddleware.
func PrincipalFromContext(c *fiber.Ctx) (*domain.Principal, bool) {
	principal, ok := c.Locals(PrincipalKey).(*domain.Principal)
	return principal, ok
}
