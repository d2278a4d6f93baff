package store

import (
	"errors"

	"github.com/weekend-explore/explore/internal/models"
	"gorm.io/gorm"
)

// UserStore provides access to user records.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create persists a new user. A unique-index collision on email is
// reported as ErrDuplicateUser, which also backstops two concurrent
// registrations racing past the existence check.
func (s *UserStore) Create(user *models.User) error {
	err := s.db.Create(user).Error

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateUser
	}

	return err
}

// FindByEmail looks a user up by the exact stored email. No case
// folding: emails are unique and compared as stored.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User

	err := s.db.Where("email = ?", email).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return &user, nil
}
