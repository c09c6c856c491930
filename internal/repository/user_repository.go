package repository

import (
	"warga-portal-svc/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for account data operations
type UserRepository interface {
	FindByEmail(email string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	GetAll() ([]models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByEmail retrieves an account by email, matched case-insensitively
func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID retrieves an account by primary key
func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves every account ordered by id
func (r *userRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Create persists a new account
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Update persists account changes
func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}
