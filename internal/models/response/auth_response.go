package response

import (
	"time"
)

// LoginResponse is the sanitized user object returned after a successful login
type LoginResponse struct {
	ID              uint       `json:"id"`
	Email           string     `json:"email"`
	Nama            string     `json:"nama"`
	Role            string     `json:"role"`
	RtAkses         string     `json:"rt_akses"`
	RwAkses         string     `json:"rw_akses"`
	StatusLangganan string     `json:"status_langganan"`
	AkhirLangganan  *time.Time `json:"akhir_langganan"`
	DashboardPath   string     `json:"dashboard_path"`
}
