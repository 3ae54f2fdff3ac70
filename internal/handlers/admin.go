package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helpdesk/internal/database"
)

// GetAllUsers lists non-disabled accounts with their role associations for
// the admin console. Not part of the provisioning contract.
func GetAllUsers(c *fiber.Ctx) error {
	db := c.Locals("db").(*gorm.DB)

	var users []database.User
	limit := c.QueryInt("limit", 100)
	offset := c.QueryInt("offset", 0)
	result := db.Where("disabled = false").
		Preload("Roles").
		Limit(limit).
		Offset(offset).
		Find(&users)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.JSON(users)
}

// CreateAuthKey issues a console API key for a user. The key value is
// generated by the database default.
func CreateAuthKey(c *fiber.Ctx) error {
	db := c.Locals("db").(*gorm.DB)

	var user database.User
	result := db.First(&user, "id = ? AND disabled = false", c.Params("user_id"))
	if result.Error != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "User not found"})
	}

	authKey := database.AuthKey{
		UserID: user.ID,
	}

	result = db.Create(&authKey)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.JSON(authKey)
}
