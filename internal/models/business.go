package models

import (
	"time"
)

// Business represents a small-business directory entry (UMKM)
type Business struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Nama      string    `json:"nama" gorm:"column:nama"`
	Pemilik   string    `json:"pemilik" gorm:"column:pemilik"`
	Kategori  string    `json:"kategori" gorm:"column:kategori;index"`
	Deskripsi string    `json:"deskripsi" gorm:"column:deskripsi;type:text"`
	NoHP      string    `json:"no_hp" gorm:"column:no_hp"`
	Alamat    string    `json:"alamat" gorm:"column:alamat"`
	RtAkses   string    `json:"rt_akses" gorm:"column:rt_akses"`
	RwAkses   string    `json:"rw_akses" gorm:"column:rw_akses"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Business
func (Business) TableName() string {
	return "umkm"
}
