package database

import (
	"time"

	"github.com/google/uuid"
)

// User rows are soft-deleted: Disabled hides the row from every provisioning
// read and write path while keeping it for audit. Active is an independent
// flag an identity provider may flip on a still-provisioned account.
//
// Email uniqueness among non-disabled rows is enforced by a partial index:
//
//	CREATE UNIQUE INDEX user_email_enabled_idx
//	    ON application.user (lower(email)) WHERE disabled = false;
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Active       bool      `json:"active" gorm:"default:true"`
	Disabled     bool      `json:"-" gorm:"default:false"`
	AuthMethod   string    `json:"-" gorm:"default:'local'"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at" gorm:"default:now()"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"default:now()"`
	Roles        []Role    `json:"roles" gorm:"many2many:application.user_role;foreignKey:ID;joinForeignKey:user_id;References:ID;joinReferences:role_id"`
}

func (u *User) TableName() string {
	return "application.user"
}

type Role struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}

func (r *Role) TableName() string {
	return "application.role"
}

type AuthKey struct {
	Key    string    `json:"key" gorm:"default:concat('hdsk.', application.random_string(32));primaryKey"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid"`
}

func (ak *AuthKey) TableName() string {
	return "application.auth_key"
}
