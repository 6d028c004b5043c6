package middleware

import (
	"confidencecompass/backend/config"
	"confidencecompass/backend/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	userIDKey   = "userID"
	userRoleKey = "userRole"
)

// AuthMiddleware validates the bearer token and stores the authenticated
// user's id and role in the request locals.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, err := utils.ExtractUserFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "No token, authorization denied")
		}

		c.Locals(userIDKey, userID)
		c.Locals(userRoleKey, role)
		return c.Next()
	}
}

// UserID returns the authenticated user id set by AuthMiddleware.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(userIDKey).(uint)
	return id
}

// UserRole returns the authenticated user's role set by AuthMiddleware.
func UserRole(c *fiber.Ctx) string {
	role, _ := c.Locals(userRoleKey).(string)
	return role
}
