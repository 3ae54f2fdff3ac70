package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"helpdesk/internal/config"
	"helpdesk/internal/database"
	"helpdesk/internal/handlers"
	"helpdesk/internal/middleware"
	"helpdesk/internal/platform/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New()

	app.Use(compress.New())
	app.Use(helmet.New())
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(healthcheck.New())

	app.Use(func(c *fiber.Ctx) error {
		c.Locals("config", cfg)
		c.Locals("db", db)
		c.Locals("users", user.NewService(db))
		return c.Next()
	})

	api := app.Group("/api")

	scim := api.Group("/scim/v2", middleware.ProvisioningAuth)
	handlers.RegisterProvisioning(scim)

	admin := api.Group("/admin", middleware.APIKeyAuth)
	admin.Get("/users", handlers.GetAllUsers)
	admin.Post("/users/:user_id/auth-key", handlers.CreateAuthKey)

	app.Use(func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	log.Fatal(app.Listen(fmt.Sprintf(":%d", cfg.ServerPort)))
}
