package repository

import (
	"warga-portal-svc/internal/models/response"

	"gorm.io/gorm"
)

// DashboardRepository defines the interface for dashboard statistics
type DashboardRepository interface {
	GetContentCounts(rtAkses, rwAkses string) (*response.DashboardStatisticsResponse, error)
}

// dashboardRepository implements DashboardRepository
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new instance of DashboardRepository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetContentCounts retrieves portal content counts. UMKM entries are scoped
// to the caller's RT/RW when codes are provided; news and job counts are
// portal-wide.
func (r *dashboardRepository) GetContentCounts(rtAkses, rwAkses string) (*response.DashboardStatisticsResponse, error) {
	var result response.DashboardStatisticsResponse

	query := `
		SELECT
			(SELECT COUNT(*) FROM berita WHERE published_at IS NOT NULL) AS total_berita,
			(SELECT COUNT(*) FROM loker WHERE aktif = true AND (kadaluarsa IS NULL OR kadaluarsa > NOW())) AS total_loker,
			(SELECT COUNT(*) FROM umkm u
				WHERE (? = '' OR u.rt_akses = ?)
				  AND (? = '' OR u.rw_akses = ?)) AS total_umkm
	`

	err := r.db.Raw(query, rtAkses, rtAkses, rwAkses, rwAkses).Scan(&result).Error
	if err != nil {
		return nil, err
	}

	result.RtAkses = rtAkses
	result.RwAkses = rwAkses

	return &result, nil
}
