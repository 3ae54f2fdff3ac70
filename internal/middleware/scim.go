package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"helpdesk/internal/config"
	"helpdesk/internal/scim"
)

// ProvisioningAuth authenticates the identity-provider integration with the
// configured shared secret. It runs before any store access; a request that
// fails here has no side effects.
func ProvisioningAuth(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.Config)

	authHeader := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).
			JSON(scim.NewError(fiber.StatusUnauthorized, "Authorization header missing or invalid"))
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if subtle.ConstantTimeCompare([]byte(token), []byte(cfg.SCIMToken)) != 1 {
		return c.Status(fiber.StatusUnauthorized).
			JSON(scim.NewError(fiber.StatusUnauthorized, "Invalid bearer token"))
	}

	return c.Next()
}
