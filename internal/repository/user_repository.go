package repository

import (
	"cortado/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(user *models.User) error
	FindByName(name string) (*models.User, error)
	FindByID(id string) (*models.User, error)
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository bound to db, which may be
// the shared pool or a transaction handle.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByName looks a user up by the business key. The match is exact and
// case-sensitive.
func (r *userRepository) FindByName(name string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("name = ?", name).First(&user).Error; err != nil {
		// return nil, not a zero-value struct, so callers can't mistake
		// a miss for a hit
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
