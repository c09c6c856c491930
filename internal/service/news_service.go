package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"warga-portal-svc/internal/models"
	"warga-portal-svc/internal/repository"
	"warga-portal-svc/pkg/logger"
)

// ErrNewsValidation is returned for incomplete article submissions
var ErrNewsValidation = errors.New("missing required news fields")

// NewsService interface defines news methods
type NewsService interface {
	GetPublished(page, limit int) ([]models.News, int64, error)
	GetBySlug(slug string) (*models.News, error)
	Create(news *models.News) (*models.News, error)
	Update(news *models.News) (*models.News, error)
	Delete(id uint) error
}

// newsService implements NewsService interface
type newsService struct {
	newsRepo repository.NewsRepository
	logger   *logger.Logger
}

// NewNewsService creates a new news service
func NewNewsService(newsRepo repository.NewsRepository, logger *logger.Logger) NewsService {
	return &newsService{
		newsRepo: newsRepo,
		logger:   logger,
	}
}

// GetPublished returns published articles with pagination
func (s *newsService) GetPublished(page, limit int) ([]models.News, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	articles, total, err := s.newsRepo.GetPublished(page, limit)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list news")
		return nil, 0, err
	}

	return articles, total, nil
}

// GetBySlug returns a published article by slug
func (s *newsService) GetBySlug(slug string) (*models.News, error) {
	news, err := s.newsRepo.FindBySlug(slug)
	if err != nil {
		s.logger.WithError(err).WithField("slug", slug).Info("News article not found")
		return nil, err
	}
	return news, nil
}

// Create validates and publishes a new article
func (s *newsService) Create(news *models.News) (*models.News, error) {
	if news.Judul == "" || news.Konten == "" {
		return nil, ErrNewsValidation
	}

	if news.Slug == "" {
		news.Slug = slugify(news.Judul)
	}
	news.DocumentID = uuid.New().String()
	if news.PublishedAt == nil {
		now := time.Now()
		news.PublishedAt = &now
	}

	if err := s.newsRepo.Create(news); err != nil {
		s.logger.WithError(err).WithField("slug", news.Slug).Error("Failed to create news article")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"news_id": news.ID,
		"slug":    news.Slug,
	}).Info("News article created")

	return news, nil
}

// Update modifies an existing article
func (s *newsService) Update(news *models.News) (*models.News, error) {
	existing, err := s.newsRepo.FindByID(news.ID)
	if err != nil {
		return nil, err
	}

	news.DocumentID = existing.DocumentID
	news.CreatedAt = existing.CreatedAt
	if news.Slug == "" {
		news.Slug = existing.Slug
	}

	if err := s.newsRepo.Update(news); err != nil {
		s.logger.WithError(err).WithField("news_id", news.ID).Error("Failed to update news article")
		return nil, err
	}

	return news, nil
}

// Delete removes an article
func (s *newsService) Delete(id uint) error {
	if _, err := s.newsRepo.FindByID(id); err != nil {
		return err
	}

	if err := s.newsRepo.Delete(id); err != nil {
		s.logger.WithError(err).WithField("news_id", id).Error("Failed to delete news article")
		return err
	}

	s.logger.WithField("news_id", id).Info("News article deleted")
	return nil
}

// slugify derives a URL slug from an article title
func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	if slug == "" {
		slug = fmt.Sprintf("berita-%d", time.Now().Unix())
	}
	return slug
}
