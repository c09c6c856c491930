package service

import (
	"context"
	"errors"

	"warga-portal-svc/internal/auth"
	"warga-portal-svc/internal/models"
	"warga-portal-svc/internal/models/response"
	"warga-portal-svc/internal/repository"
	"warga-portal-svc/pkg/logger"
)

// MaskMarker replaces sensitive identifier fields in list responses
const MaskMarker = "***********"

// maskFiller sits between the first and last four characters of a verified
// identifier preview
const maskFiller = "********"

// Errors surfaced by warga operations
var (
	ErrWargaValidation = errors.New("missing required warga fields")
	ErrOutOfScope      = errors.New("warga is outside the caller's RT/RW scope")
)

// WargaService interface defines resident registry methods
type WargaService interface {
	List(ctx context.Context, user *auth.SessionUser) []models.Warga
	Create(ctx context.Context, user *auth.SessionUser, warga *models.Warga) (*models.Warga, error)
	Update(ctx context.Context, user *auth.SessionUser, warga *models.Warga) (*models.Warga, error)
	Deactivate(ctx context.Context, user *auth.SessionUser, id int) error
	Verify(ctx context.Context, nik, kk string) (*response.VerifyWargaResponse, error)
}

// wargaService implements WargaService interface
type wargaService struct {
	wargaRepo repository.WargaRepository
	logger    *logger.Logger
}

// NewWargaService creates a new warga service
func NewWargaService(wargaRepo repository.WargaRepository, logger *logger.Logger) WargaService {
	return &wargaService{
		wargaRepo: wargaRepo,
		logger:    logger,
	}
}

// FilterWarga returns the subset of residents the session user may see, with
// masking applied. Selection runs first, then masking; both stages are
// mandatory. Roles outside the enumeration get nothing.
func FilterWarga(user *auth.SessionUser, records []models.Warga) []models.Warga {
	visible := make([]models.Warga, 0, len(records))

	if user == nil {
		return visible
	}

	switch user.Role {
	case auth.RoleSuperAdmin, auth.RoleAdmin, auth.RoleDeveloper:
		visible = append(visible, records...)
	case auth.RoleAdminRW, auth.RoleKetuaRW:
		for _, warga := range records {
			if warga.RwAkses == user.RwAkses {
				visible = append(visible, warga)
			}
		}
	case auth.RoleAdminRT, auth.RoleKetuaRT:
		for _, warga := range records {
			if warga.RtAkses == user.RtAkses && warga.RwAkses == user.RwAkses {
				visible = append(visible, warga)
			}
		}
	default:
		// admin_lembaga has no resident visibility; unknown roles are
		// treated the same rather than falling through to the full set.
		return visible
	}

	canViewPhone := auth.HasPermission(user, auth.CanViewPhone)
	for i := range visible {
		visible[i].NIK = MaskMarker
		visible[i].NoKK = MaskMarker
		if !canViewPhone {
			visible[i].NoHP = MaskMarker
		}
	}

	return visible
}

// List returns the residents visible to the session user
func (s *wargaService) List(ctx context.Context, user *auth.SessionUser) []models.Warga {
	records := s.wargaRepo.GetActive(ctx)
	filtered := FilterWarga(user, records)

	s.logger.WithFields(map[string]interface{}{
		"role":    roleOf(user),
		"fetched": len(records),
		"visible": len(filtered),
	}).Info("Warga list retrieved")

	return filtered
}

// Create registers a new resident. RT-level admins are pinned to their own
// RT/RW regardless of the submitted codes.
func (s *wargaService) Create(ctx context.Context, user *auth.SessionUser, warga *models.Warga) (*models.Warga, error) {
	if warga.NIK == "" || warga.NoKK == "" || warga.Nama == "" {
		return nil, ErrWargaValidation
	}

	if user.Role == auth.RoleAdminRT || user.Role == auth.RoleKetuaRT {
		warga.RtAkses = user.RtAkses
		warga.RwAkses = user.RwAkses
	}
	if warga.RtAkses == "" || warga.RwAkses == "" {
		return nil, ErrWargaValidation
	}

	if err := s.wargaRepo.Create(ctx, warga); err != nil {
		s.logger.WithError(err).Error("Failed to create warga")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"warga_id": warga.ID,
		"rt_akses": warga.RtAkses,
		"rw_akses": warga.RwAkses,
		"by":       roleOf(user),
	}).Info("Warga created")

	return warga, nil
}

// Update modifies a resident within the caller's scope
func (s *wargaService) Update(ctx context.Context, user *auth.SessionUser, warga *models.Warga) (*models.Warga, error) {
	existing, err := s.wargaRepo.FindByID(ctx, warga.ID)
	if err != nil {
		return nil, err
	}

	if !inScope(user, existing) {
		s.logger.WithFields(map[string]interface{}{
			"warga_id": warga.ID,
			"role":     roleOf(user),
		}).Warn("Update rejected: warga outside caller scope")
		return nil, ErrOutOfScope
	}

	// Scope codes cannot be moved by RT/RW admins
	if user.Role != auth.RoleSuperAdmin && user.Role != auth.RoleAdmin {
		warga.RtAkses = existing.RtAkses
		warga.RwAkses = existing.RwAkses
	}

	if err := s.wargaRepo.Update(ctx, warga); err != nil {
		s.logger.WithError(err).WithField("warga_id", warga.ID).Error("Failed to update warga")
		return nil, err
	}

	return warga, nil
}

// Deactivate soft-deletes a resident by flipping the status flag
func (s *wargaService) Deactivate(ctx context.Context, user *auth.SessionUser, id int) error {
	existing, err := s.wargaRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !inScope(user, existing) {
		return ErrOutOfScope
	}

	if err := s.wargaRepo.Deactivate(ctx, id); err != nil {
		s.logger.WithError(err).WithField("warga_id", id).Error("Failed to deactivate warga")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"warga_id": id,
		"by":       roleOf(user),
	}).Info("Warga deactivated")

	return nil
}

// Verify looks up a resident by NIK and family-card number. The raw
// identifiers are stripped from the result; only masked previews built from
// the caller's input are returned. A fetch failure and a miss are both
// ErrWargaNotFound-equivalent for callers, but fetch failures keep their
// original error for diagnostics.
func (s *wargaService) Verify(ctx context.Context, nik, kk string) (*response.VerifyWargaResponse, error) {
	warga, err := s.wargaRepo.FindByNIKAndKK(ctx, nik, kk)
	if err != nil {
		if !errors.Is(err, repository.ErrWargaNotFound) {
			s.logger.WithError(err).Error("Warga verification failed upstream")
		}
		return nil, err
	}

	return &response.VerifyWargaResponse{
		Nama:         warga.Nama,
		JenisKelamin: warga.JenisKelamin,
		Alamat:       warga.Alamat,
		RtAkses:      warga.RtAkses,
		RwAkses:      warga.RwAkses,
		Status:       warga.Status,
		NIKMasked:    MaskIdentifier(nik),
		KKMasked:     MaskIdentifier(kk),
	}, nil
}

// MaskIdentifier builds a first-4 + filler + last-4 preview of an identifier
func MaskIdentifier(value string) string {
	if len(value) < 8 {
		return MaskMarker
	}
	return value[:4] + maskFiller + value[len(value)-4:]
}

// inScope reports whether the session user's role and codes cover the resident
func inScope(user *auth.SessionUser, warga *models.Warga) bool {
	if user == nil {
		return false
	}
	switch user.Role {
	case auth.RoleSuperAdmin, auth.RoleAdmin, auth.RoleDeveloper:
		return true
	case auth.RoleAdminRW, auth.RoleKetuaRW:
		return warga.RwAkses == user.RwAkses
	case auth.RoleAdminRT, auth.RoleKetuaRT:
		return warga.RtAkses == user.RtAkses && warga.RwAkses == user.RwAkses
	default:
		return false
	}
}

// roleOf is a nil-safe role accessor for log fields
func roleOf(user *auth.SessionUser) string {
	if user == nil {
		return ""
	}
	return user.Role
}
