package database

import (
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"helpdesk/internal/config"
)

func Connect(c *config.Config) (*gorm.DB, error) {
	// TranslateError maps a unique index violation to gorm.ErrDuplicatedKey,
	// which the provisioning create path relies on.
	db, err := gorm.Open(postgres.Open(c.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal(err)
	}

	log.Debug("GORM connected to database")

	return db, err
}
