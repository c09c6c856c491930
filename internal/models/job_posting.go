package models

import (
	"time"
)

// JobPosting represents a job listing (loker) on the portal
type JobPosting struct {
	ID         uint       `json:"id" gorm:"primarykey"`
	DocumentID string     `json:"document_id" gorm:"column:document_id"`
	Judul      string     `json:"judul" gorm:"column:judul"`
	Perusahaan string     `json:"perusahaan" gorm:"column:perusahaan"`
	Lokasi     string     `json:"lokasi" gorm:"column:lokasi"`
	Deskripsi  string     `json:"deskripsi" gorm:"column:deskripsi;type:text"`
	Kontak     string     `json:"kontak" gorm:"column:kontak"`
	Aktif      bool       `json:"aktif" gorm:"column:aktif;default:true"`
	Kadaluarsa *time.Time `json:"kadaluarsa" gorm:"column:kadaluarsa"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TableName sets the insert table name for JobPosting
func (JobPosting) TableName() string {
	return "loker"
}
