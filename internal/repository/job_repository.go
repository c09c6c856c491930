package repository

import (
	"time"

	"warga-portal-svc/internal/models"

	"gorm.io/gorm"
)

// JobRepository defines the interface for job posting data operations
type JobRepository interface {
	GetActive() ([]models.JobPosting, error)
	FindByID(id uint) (*models.JobPosting, error)
	Create(job *models.JobPosting) error
	Update(job *models.JobPosting) error
	Delete(id uint) error
}

// jobRepository implements JobRepository
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new instance of JobRepository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{
		db: db,
	}
}

// GetActive retrieves postings that are active and not past their expiry
func (r *jobRepository) GetActive() ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	err := r.db.
		Where("aktif = ?", true).
		Where("kadaluarsa IS NULL OR kadaluarsa > ?", time.Now()).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindByID retrieves a posting by primary key
func (r *jobRepository) FindByID(id uint) (*models.JobPosting, error) {
	var job models.JobPosting
	err := r.db.First(&job, id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Create persists a new posting
func (r *jobRepository) Create(job *models.JobPosting) error {
	return r.db.Create(job).Error
}

// Update persists posting changes
func (r *jobRepository) Update(job *models.JobPosting) error {
	return r.db.Save(job).Error
}

// Delete removes a posting
func (r *jobRepository) Delete(id uint) error {
	return r.db.Delete(&models.JobPosting{}, id).Error
}
