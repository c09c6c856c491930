package service

import (
	"errors"

	"warga-portal-svc/internal/auth"
	"warga-portal-svc/internal/models"
	"warga-portal-svc/internal/repository"
	"warga-portal-svc/pkg/logger"
)

// ErrBusinessValidation is returned for incomplete directory submissions
var ErrBusinessValidation = errors.New("missing required business fields")

// BusinessService interface defines UMKM directory methods
type BusinessService interface {
	GetAll(kategori string) ([]models.Business, error)
	Create(user *auth.SessionUser, business *models.Business) (*models.Business, error)
	Update(business *models.Business) (*models.Business, error)
	Delete(id uint) error
}

// businessService implements BusinessService interface
type businessService struct {
	businessRepo repository.BusinessRepository
	logger       *logger.Logger
}

// NewBusinessService creates a new business service
func NewBusinessService(businessRepo repository.BusinessRepository, logger *logger.Logger) BusinessService {
	return &businessService{
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// GetAll returns directory entries, optionally filtered by category
func (s *businessService) GetAll(kategori string) ([]models.Business, error) {
	businesses, err := s.businessRepo.GetAll(kategori)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list businesses")
		return nil, err
	}
	return businesses, nil
}

// Create validates and stores a directory entry. Warga submitting their own
// business are pinned to their registered RT/RW.
func (s *businessService) Create(user *auth.SessionUser, business *models.Business) (*models.Business, error) {
	if business.Nama == "" || business.Pemilik == "" || business.Kategori == "" {
		return nil, ErrBusinessValidation
	}

	if user != nil && user.Role == auth.RoleWarga {
		business.RtAkses = user.RtAkses
		business.RwAkses = user.RwAkses
	}

	if err := s.businessRepo.Create(business); err != nil {
		s.logger.WithError(err).Error("Failed to create business entry")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"business_id": business.ID,
		"nama":        business.Nama,
		"kategori":    business.Kategori,
	}).Info("Business entry created")

	return business, nil
}

// Update modifies an existing entry
func (s *businessService) Update(business *models.Business) (*models.Business, error) {
	existing, err := s.businessRepo.FindByID(business.ID)
	if err != nil {
		return nil, err
	}

	business.CreatedAt = existing.CreatedAt

	if err := s.businessRepo.Update(business); err != nil {
		s.logger.WithError(err).WithField("business_id", business.ID).Error("Failed to update business entry")
		return nil, err
	}

	return business, nil
}

// Delete removes an entry
func (s *businessService) Delete(id uint) error {
	if _, err := s.businessRepo.FindByID(id); err != nil {
		return err
	}

	if err := s.businessRepo.Delete(id); err != nil {
		s.logger.WithError(err).WithField("business_id", id).Error("Failed to delete business entry")
		return err
	}

	s.logger.WithField("business_id", id).Info("Business entry deleted")
	return nil
}
