package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"helpdesk/internal/config"
	"helpdesk/internal/database"
	"helpdesk/internal/mail"
	"helpdesk/internal/platform/user"
	"helpdesk/internal/scim"
	"helpdesk/pkg/utils"
)

// ProvisioningBasePath prefixes the meta.location of every returned resource.
const ProvisioningBasePath = "/api/scim/v2"

// RegisterProvisioning mounts the SCIM Users endpoint family on r. The bearer
// gate is expected to run on the group before any of these.
func RegisterProvisioning(r fiber.Router) {
	r.Get("/Users", ListProvisionedUsers)
	r.Post("/Users", CreateProvisionedUser)
	r.Get("/Users/:user_id", GetProvisionedUser)
	r.Put("/Users/:user_id", ReplaceProvisionedUser)
	r.Delete("/Users/:user_id", DeleteProvisionedUser)
}

func scimInternalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).
		JSON(scim.NewError(fiber.StatusInternalServerError, "Internal server error"))
}

func scimNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).
		JSON(scim.NewError(fiber.StatusNotFound, "User not found"))
}

func ListProvisionedUsers(c *fiber.Ctx) error {
	store := c.Locals("users").(user.Store)

	filter := scim.ParseFilter(c.Query("filter"))
	page := scim.Page{
		StartIndex: c.QueryInt("startIndex", 1),
		Count:      c.QueryInt("count", scim.DefaultCount),
	}

	total, err := store.Count(filter)
	if err != nil {
		log.Errorf("provisioning list count: %v", err)
		return scimInternalError(c)
	}

	rows, err := store.List(filter, page.Offset(), page.Limit())
	if err != nil {
		log.Errorf("provisioning list: %v", err)
		return scimInternalError(c)
	}

	resources := make([]scim.User, 0, len(rows))
	for i := range rows {
		resources = append(resources, scim.FromRow(&rows[i], ProvisioningBasePath))
	}

	return c.JSON(scim.ListResponse{
		Schemas:      []string{scim.SchemaListResponse},
		TotalResults: total,
		StartIndex:   page.StartIndex,
		ItemsPerPage: len(resources),
		Resources:    resources,
	})
}

func GetProvisionedUser(c *fiber.Ctx) error {
	store := c.Locals("users").(user.Store)

	uid, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return scimNotFound(c)
	}

	row, err := store.GetByID(uid)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return scimNotFound(c)
		}
		log.Errorf("provisioning fetch: %v", err)
		return scimInternalError(c)
	}

	return c.JSON(scim.FromRow(row, ProvisioningBasePath))
}

func CreateProvisionedUser(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.Config)
	store := c.Locals("users").(user.Store)

	var input scim.UserRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(scim.NewTypedError(fiber.StatusBadRequest, "invalidValue", "Invalid request payload"))
	}

	if err := config.Validate.Var(input.UserName, "required,email"); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(scim.NewTypedError(fiber.StatusBadRequest, "invalidValue", "userName must be a valid email address"))
	}

	email := input.PrimaryEmail()

	existing, err := store.GetByEmail(email)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		log.Errorf("provisioning uniqueness check: %v", err)
		return scimInternalError(c)
	}
	if existing != nil {
		return c.Status(fiber.StatusConflict).
			JSON(scim.NewTypedError(fiber.StatusConflict, "uniqueness", "User with this email already exists"))
	}

	row := &database.User{
		Email:        email,
		Name:         input.DisplayName(),
		Active:       input.IsActive(),
		AuthMethod:   "scim",
		PasswordHash: utils.HashPassword(utils.GenerateRandomString(32)),
	}

	if err := store.Create(row); err != nil {
		// Two concurrent creates can both pass the lookup; the partial unique
		// index breaks the tie and the loser lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).
				JSON(scim.NewTypedError(fiber.StatusConflict, "uniqueness", "User with this email already exists"))
		}
		log.Errorf("provisioning create: %v", err)
		return scimInternalError(c)
	}

	if cfg.MailgunDomain != "" {
		mailer := mail.NewMailer(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunAPIBase)
		if err := mailer.SendMail(mail.WelcomeMail(cfg.MailFrom, row.Email, row.Name)); err != nil {
			log.Errorf("provisioning welcome mail: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(scim.FromRow(row, ProvisioningBasePath))
}

func ReplaceProvisionedUser(c *fiber.Ctx) error {
	store := c.Locals("users").(user.Store)

	uid, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return scimNotFound(c)
	}

	row, err := store.GetByID(uid)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return scimNotFound(c)
		}
		log.Errorf("provisioning replace lookup: %v", err)
		return scimInternalError(c)
	}

	var input scim.UserRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(scim.NewTypedError(fiber.StatusBadRequest, "invalidValue", "Invalid request payload"))
	}

	// Only attributes present in the payload are applied.
	if input.UserName != "" {
		if err := config.Validate.Var(input.UserName, "email"); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(scim.NewTypedError(fiber.StatusBadRequest, "invalidValue", "userName must be a valid email address"))
		}
		row.Email = input.UserName
	}
	if input.Name != nil {
		name := strings.TrimSpace(input.Name.GivenName + " " + input.Name.FamilyName)
		if name == "" {
			name = row.Email
		}
		row.Name = name
	}
	if input.Active != nil {
		row.Active = *input.Active
	}

	if err := store.Update(row); err != nil {
		log.Errorf("provisioning replace: %v", err)
		return scimInternalError(c)
	}

	return c.JSON(scim.FromRow(row, ProvisioningBasePath))
}

func DeleteProvisionedUser(c *fiber.Ctx) error {
	store := c.Locals("users").(user.Store)

	uid, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return scimNotFound(c)
	}

	row, err := store.GetByID(uid)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return scimNotFound(c)
		}
		log.Errorf("provisioning deactivate lookup: %v", err)
		return scimInternalError(c)
	}

	if err := store.SoftDelete(row); err != nil {
		log.Errorf("provisioning deactivate: %v", err)
		return scimInternalError(c)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
