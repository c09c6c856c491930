package repository

import (
	"warga-portal-svc/internal/models"

	"gorm.io/gorm"
)

// NewsRepository defines the interface for news data operations
type NewsRepository interface {
	GetPublished(page, limit int) ([]models.News, int64, error)
	FindBySlug(slug string) (*models.News, error)
	FindByID(id uint) (*models.News, error)
	Create(news *models.News) error
	Update(news *models.News) error
	Delete(id uint) error
}

// newsRepository implements NewsRepository
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new instance of NewsRepository
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{
		db: db,
	}
}

// GetPublished retrieves published articles, newest first, with pagination
func (r *newsRepository) GetPublished(page, limit int) ([]models.News, int64, error) {
	var articles []models.News
	var total int64

	query := r.db.Model(&models.News{}).Where("published_at IS NOT NULL")
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("published_at DESC").Offset(offset).Limit(limit).Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

// FindBySlug retrieves a published article by slug
func (r *newsRepository) FindBySlug(slug string) (*models.News, error) {
	var news models.News
	err := r.db.Where("slug = ? AND published_at IS NOT NULL", slug).First(&news).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// FindByID retrieves an article by primary key
func (r *newsRepository) FindByID(id uint) (*models.News, error) {
	var news models.News
	err := r.db.First(&news, id).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// Create persists a new article
func (r *newsRepository) Create(news *models.News) error {
	return r.db.Create(news).Error
}

// Update persists article changes
func (r *newsRepository) Update(news *models.News) error {
	return r.db.Save(news).Error
}

// Delete removes an article
func (r *newsRepository) Delete(id uint) error {
	return r.db.Delete(&models.News{}, id).Error
}
