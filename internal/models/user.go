package models

import (
	"time"
)

// User represents a portal account in the users table
type User struct {
	ID              uint       `json:"id" gorm:"primarykey"`
	Email           string     `json:"email" gorm:"column:email;uniqueIndex"`
	Password        string     `json:"-" gorm:"column:password"`
	Nama            string     `json:"nama" gorm:"column:nama"`
	Role            string     `json:"role" gorm:"column:role"`
	RtAkses         string     `json:"rt_akses" gorm:"column:rt_akses"`
	RwAkses         string     `json:"rw_akses" gorm:"column:rw_akses"`
	StatusAktif     bool       `json:"status_aktif" gorm:"column:status_aktif;default:true"`
	StatusLangganan string     `json:"status_langganan" gorm:"column:status_langganan"`
	AkhirLangganan  *time.Time `json:"akhir_langganan" gorm:"column:akhir_langganan"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName sets the insert table name for User
func (User) TableName() string {
	return "users"
}
