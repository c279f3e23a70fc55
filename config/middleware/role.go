package middleware

import (
	"slices"

	"leave-tracking/models"
	"leave-tracking/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// RequireRole lets the request through only for the listed roles. It must
// run after AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := CurrentUser(c)
		if !ok {
			return unauthorized(c, "Not authenticated")
		}

		if !slices.Contains(roles, claims.Role) {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse{
				Code:  apperror.CodeForbidden,
				Error: "Access denied for role " + claims.Role,
			})
		}
		return c.Next()
	}
}
