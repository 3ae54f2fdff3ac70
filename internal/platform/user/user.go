package user

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"helpdesk/internal/database"
	"helpdesk/internal/scim"
)

var ErrUserNotFound = errors.New("user not found")

// Store is the provisioning view of the user table. Disabled rows are
// invisible to every method; a disabled row never comes back and never blocks
// an email.
type Store interface {
	GetByID(id uuid.UUID) (*database.User, error)
	GetByEmail(email string) (*database.User, error)
	Create(u *database.User) error
	Update(u *database.User) error
	SoftDelete(u *database.User) error
	List(f scim.Filter, offset, limit int) ([]database.User, error)
	Count(f scim.Filter) (int64, error)
}

type UserService struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetByID(id uuid.UUID) (*database.User, error) {
	var user database.User
	result := s.db.First(&user, "id = ? AND disabled = false", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (s *UserService) GetByEmail(email string) (*database.User, error) {
	var user database.User
	result := s.db.First(&user, "email = ? AND disabled = false", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (s *UserService) Create(u *database.User) error {
	return s.db.Create(u).Error
}

func (s *UserService) Update(u *database.User) error {
	return s.db.Save(u).Error
}

func (s *UserService) SoftDelete(u *database.User) error {
	u.Disabled = true
	return s.db.Save(u).Error
}

func (s *UserService) List(f scim.Filter, offset, limit int) ([]database.User, error) {
	var users []database.User
	result := applyFilter(s.db.Model(&database.User{}), f).
		Order("created_at").
		Offset(offset).
		Limit(limit).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (s *UserService) Count(f scim.Filter) (int64, error) {
	var count int64
	result := applyFilter(s.db.Model(&database.User{}), f).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// applyFilter narrows the query to non-disabled rows and applies the compiled
// filter clause. eq matches under the column collation; the substring
// operators are case-insensitive.
func applyFilter(db *gorm.DB, f scim.Filter) *gorm.DB {
	db = db.Where("disabled = false")
	if f.Op == scim.OpNone {
		return db
	}

	if f.Field == scim.FieldActive {
		return db.Where("active = ?", f.Value == "true")
	}

	column := "email"
	if f.Field == scim.FieldName {
		column = "name"
	}

	switch f.Op {
	case scim.OpEq:
		return db.Where(column+" = ?", f.Value)
	case scim.OpContains:
		return db.Where(column+" ILIKE ?", "%"+f.Value+"%")
	case scim.OpStartsWith:
		return db.Where(column+" ILIKE ?", f.Value+"%")
	case scim.OpEndsWith:
		return db.Where(column+" ILIKE ?", "%"+f.Value)
	}

	return db
}
