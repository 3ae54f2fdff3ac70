package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helpdesk/internal/database"
)

const (
	HeaderXAPIKey = "X-API-Key"
)

// APIKeyAuth guards the console management surface. The key resolves to a
// non-disabled user through the auth_key table.
func APIKeyAuth(c *fiber.Ctx) error {
	db := c.Locals("db").(*gorm.DB)

	xAPIKey := c.Get(HeaderXAPIKey)
	if xAPIKey == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}

	var user database.User
	result := db.Joins("JOIN application.auth_key ON application.auth_key.user_id = application.user.id").
		Where("application.auth_key.key = ? AND application.user.disabled = false", xAPIKey).
		First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	c.Locals("user", user)

	return c.Next()
}
