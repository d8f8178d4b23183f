package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that checks the role claim set by
// JWTMiddleware. Runs after JWTMiddleware.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized: role not found")
		}

		if role != requiredRole {
			return Fail(c, fiber.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource!")
		}

		return c.Next()
	}
}
