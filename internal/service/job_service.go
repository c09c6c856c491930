package service

import (
	"errors"

	"github.com/google/uuid"

	"warga-portal-svc/internal/models"
	"warga-portal-svc/internal/repository"
	"warga-portal-svc/pkg/logger"
)

// ErrJobValidation is returned for incomplete job submissions
var ErrJobValidation = errors.New("missing required job posting fields")

// JobService interface defines job posting methods
type JobService interface {
	GetActive() ([]models.JobPosting, error)
	Create(job *models.JobPosting) (*models.JobPosting, error)
	Update(job *models.JobPosting) (*models.JobPosting, error)
	Delete(id uint) error
}

// jobService implements JobService interface
type jobService struct {
	jobRepo repository.JobRepository
	logger  *logger.Logger
}

// NewJobService creates a new job service
func NewJobService(jobRepo repository.JobRepository, logger *logger.Logger) JobService {
	return &jobService{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

// GetActive returns current job postings
func (s *jobService) GetActive() ([]models.JobPosting, error) {
	jobs, err := s.jobRepo.GetActive()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list job postings")
		return nil, err
	}
	return jobs, nil
}

// Create validates and stores a new posting
func (s *jobService) Create(job *models.JobPosting) (*models.JobPosting, error) {
	if job.Judul == "" || job.Perusahaan == "" || job.Kontak == "" {
		return nil, ErrJobValidation
	}

	job.DocumentID = uuid.New().String()
	job.Aktif = true

	if err := s.jobRepo.Create(job); err != nil {
		s.logger.WithError(err).Error("Failed to create job posting")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"job_id": job.ID,
		"judul":  job.Judul,
	}).Info("Job posting created")

	return job, nil
}

// Update modifies an existing posting
func (s *jobService) Update(job *models.JobPosting) (*models.JobPosting, error) {
	existing, err := s.jobRepo.FindByID(job.ID)
	if err != nil {
		return nil, err
	}

	job.DocumentID = existing.DocumentID
	job.CreatedAt = existing.CreatedAt

	if err := s.jobRepo.Update(job); err != nil {
		s.logger.WithError(err).WithField("job_id", job.ID).Error("Failed to update job posting")
		return nil, err
	}

	return job, nil
}

// Delete removes a posting
func (s *jobService) Delete(id uint) error {
	if _, err := s.jobRepo.FindByID(id); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(id); err != nil {
		s.logger.WithError(err).WithField("job_id", id).Error("Failed to delete job posting")
		return err
	}

	s.logger.WithField("job_id", id).Info("Job posting deleted")
	return nil
}
