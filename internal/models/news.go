package models

import (
	"time"
)

// News represents a portal news article (berita)
type News struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	DocumentID  string     `json:"document_id" gorm:"column:document_id"`
	Judul       string     `json:"judul" gorm:"column:judul"`
	Slug        string     `json:"slug" gorm:"column:slug;uniqueIndex"`
	Konten      string     `json:"konten" gorm:"column:konten;type:text"`
	GambarURL   string     `json:"gambar_url" gorm:"column:gambar_url"`
	Penulis     string     `json:"penulis" gorm:"column:penulis"`
	PublishedAt *time.Time `json:"published_at" gorm:"column:published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName sets the insert table name for News
func (News) TableName() string {
	return "berita"
}
