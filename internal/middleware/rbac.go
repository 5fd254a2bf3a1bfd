package middleware

import (
	"github.com/gofiber/fiber/v2"
)

func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := GetCurrentClaims(c)
		if claims == nil {
			return Unauthorized("Employee not found")
		}

		if !claims.IsAdmin() {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}
