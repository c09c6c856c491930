package repository

import (
	"warga-portal-svc/internal/models"

	"gorm.io/gorm"
)

// BusinessRepository defines the interface for UMKM directory operations
type BusinessRepository interface {
	GetAll(kategori string) ([]models.Business, error)
	FindByID(id uint) (*models.Business, error)
	Create(business *models.Business) error
	Update(business *models.Business) error
	Delete(id uint) error
}

// businessRepository implements BusinessRepository
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a new instance of BusinessRepository
func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// GetAll retrieves directory entries, optionally filtered by category
func (r *businessRepository) GetAll(kategori string) ([]models.Business, error) {
	var businesses []models.Business

	query := r.db.Order("nama")
	if kategori != "" {
		query = query.Where("kategori = ?", kategori)
	}

	err := query.Find(&businesses).Error
	if err != nil {
		return nil, err
	}
	return businesses, nil
}

// FindByID retrieves an entry by primary key
func (r *businessRepository) FindByID(id uint) (*models.Business, error) {
	var business models.Business
	err := r.db.First(&business, id).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// Create persists a new entry
func (r *businessRepository) Create(business *models.Business) error {
	return r.db.Create(business).Error
}

// Update persists entry changes
func (r *businessRepository) Update(business *models.Business) error {
	return r.db.Save(business).Error
}

// Delete removes an entry
func (r *businessRepository) Delete(id uint) error {
	return r.db.Delete(&models.Business{}, id).Error
}
