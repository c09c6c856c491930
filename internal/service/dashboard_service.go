package service

import (
	"context"

	"warga-portal-svc/internal/auth"
	"warga-portal-svc/internal/models/response"
	"warga-portal-svc/internal/repository"
	"warga-portal-svc/pkg/logger"
)

// DashboardService interface defines dashboard statistics methods
type DashboardService interface {
	GetStatistics(ctx context.Context, user *auth.SessionUser) (*response.DashboardStatisticsResponse, error)
}

// dashboardService implements DashboardService interface
type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	wargaRepo     repository.WargaRepository
	logger        *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboardRepo repository.DashboardRepository, wargaRepo repository.WargaRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		wargaRepo:     wargaRepo,
		logger:        logger,
	}
}

// GetStatistics combines relational content counts with sheet-backed resident
// counts, scoped to the session user's visibility.
func (s *dashboardService) GetStatistics(ctx context.Context, user *auth.SessionUser) (*response.DashboardStatisticsResponse, error) {
	rtAkses, rwAkses := scopeFor(user)

	stats, err := s.dashboardRepo.GetContentCounts(rtAkses, rwAkses)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get dashboard content counts")
		return nil, err
	}

	// Resident counts go through the same visibility filter as the registry
	// list, so a dashboard can never show more than its role could browse.
	all := s.wargaRepo.GetAll(ctx)
	visible := FilterWarga(user, all)
	stats.TotalWarga = len(visible)
	for _, warga := range visible {
		if warga.IsActive() {
			stats.WargaAktif++
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"role":        roleOf(user),
		"total_warga": stats.TotalWarga,
		"warga_aktif": stats.WargaAktif,
	}).Info("Dashboard statistics retrieved")

	return stats, nil
}

// scopeFor derives the RT/RW filter codes from the session user's role
func scopeFor(user *auth.SessionUser) (string, string) {
	if user == nil {
		return "", ""
	}
	switch user.Role {
	case auth.RoleAdminRT, auth.RoleKetuaRT:
		return user.RtAkses, user.RwAkses
	case auth.RoleAdminRW, auth.RoleKetuaRW:
		return "", user.RwAkses
	default:
		return "", ""
	}
}
