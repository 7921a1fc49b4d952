package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/inkwell-dev/inkwell/internal/auth"
	"github.com/inkwell-dev/inkwell/internal/models"
	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create hashes the password and inserts the user. The email unique index is
// the authority on duplicates; the pre-check only gives the common case a
// cleaner path.
func (s *UserStore) Create(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("could not check existing user: %w", err)
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	return &user, nil
}

func (s *UserStore) GetByID(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not get user: %w", err)
	}

	return &user, nil
}

func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not get user by email: %w", err)
	}

	return &user, nil
}
