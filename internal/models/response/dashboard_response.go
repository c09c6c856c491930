package response

// DashboardStatisticsResponse holds per-scope counts for the admin dashboards
type DashboardStatisticsResponse struct {
	TotalWarga  int    `json:"total_warga"`
	WargaAktif  int    `json:"warga_aktif"`
	TotalBerita int64  `json:"total_berita"`
	TotalLoker  int64  `json:"total_loker"`
	TotalUMKM   int64  `json:"total_umkm"`
	RtAkses     string `json:"rt_akses,omitempty"`
	RwAkses     string `json:"rw_akses,omitempty"`
}
