package middleware

import (
	"strings"

	"leave-tracking/models"
	"leave-tracking/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

const userLocalsKey = "user"

type TokenValidator interface {
	ValidateToken(token string) (*models.Claims, error)
}

func AuthMiddleware(tokens TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Authorization header is required")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return unauthorized(c, "Authorization header format must be Bearer <token>")
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		c.Locals(userLocalsKey, claims)
		return c.Next()
	}
}

// CurrentUser returns the claims stored by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) (*models.Claims, bool) {
	claims, ok := c.Locals(userLocalsKey).(*models.Claims)
	return claims, ok && claims != nil
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
		Code:  apperror.CodeUnauthorized,
		Error: msg,
	})
}
