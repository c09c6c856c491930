package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"warga-portal-svc/internal/models"
	"warga-portal-svc/internal/service"
	"warga-portal-svc/pkg/logger"
	"warga-portal-svc/pkg/utils"
)

// NewsHandler handles news HTTP requests
type NewsHandler struct {
	newsService service.NewsService
	logger      *logger.Logger
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(newsService service.NewsService, logger *logger.Logger) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
		logger:      logger,
	}
}

// NewsRequest is the create/update payload for an article
type NewsRequest struct {
	Judul     string `json:"judul" binding:"required" example:"Kerja Bakti Minggu Ini"`
	Slug      string `json:"slug" example:"kerja-bakti-minggu-ini"`
	Konten    string `json:"konten" binding:"required"`
	GambarURL string `json:"gambar_url"`
	Penulis   string `json:"penulis" example:"Sekretariat RW"`
}

// NewsListResponse wraps a paginated article list
type NewsListResponse struct {
	Items []models.News `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// List handles GET /api/v1/berita
// @Summary List published news
// @Tags berita
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} utils.APIResponse{data=NewsListResponse} "News retrieved"
// @Router /api/v1/berita [get]
func (h *NewsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	articles, total, err := h.newsService.GetPublished(page, limit)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to list news", err)
		return
	}

	utils.SuccessResponse(c, "News retrieved successfully", NewsListResponse{
		Items: articles,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetBySlug handles GET /api/v1/berita/:slug
// @Summary Get a published article by slug
// @Tags berita
// @Produce json
// @Param slug path string true "Slug"
// @Success 200 {object} utils.APIResponse{data=models.News} "Article retrieved"
// @Failure 404 {object} utils.APIResponse "Article not found"
// @Router /api/v1/berita/{slug} [get]
func (h *NewsHandler) GetBySlug(c *gin.Context) {
	news, err := h.newsService.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Article not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to get article", err)
		return
	}
	utils.SuccessResponse(c, "Article retrieved successfully", news)
}

// Create handles POST /api/v1/berita
// @Summary Publish a news article
// @Tags berita
// @Accept json
// @Produce json
// @Param request body NewsRequest true "Article"
// @Success 201 {object} utils.APIResponse{data=models.News} "Article created"
// @Failure 400 {object} utils.APIResponse "Validation failure"
// @Failure 403 {object} utils.APIResponse "Insufficient role"
// @Router /api/v1/berita [post]
func (h *NewsHandler) Create(c *gin.Context) {
	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid article payload", err)
		return
	}

	now := time.Now()
	created, err := h.newsService.Create(&models.News{
		Judul:       req.Judul,
		Slug:        req.Slug,
		Konten:      req.Konten,
		GambarURL:   req.GambarURL,
		Penulis:     req.Penulis,
		PublishedAt: &now,
	})
	if err != nil {
		if errors.Is(err, service.ErrNewsValidation) {
			utils.BadRequestResponse(c, "Missing required article fields", err)
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to create article", err)
		return
	}

	utils.CreatedResponse(c, "Article created successfully", created)
}

// Update handles PUT /api/v1/berita/:id
// @Summary Update an article
// @Tags berita
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param request body NewsRequest true "Article"
// @Success 200 {object} utils.APIResponse{data=models.News} "Article updated"
// @Failure 404 {object} utils.APIResponse "Article not found"
// @Router /api/v1/berita/{id} [put]
func (h *NewsHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid article ID", err)
		return
	}

	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid article payload", err)
		return
	}

	updated, err := h.newsService.Update(&models.News{
		ID:        uint(id),
		Judul:     req.Judul,
		Slug:      req.Slug,
		Konten:    req.Konten,
		GambarURL: req.GambarURL,
		Penulis:   req.Penulis,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Article not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to update article", err)
		return
	}

	utils.SuccessResponse(c, "Article updated successfully", updated)
}

// Delete handles DELETE /api/v1/berita/:id
// @Summary Delete an article
// @Tags berita
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} utils.APIResponse "Article deleted"
// @Failure 404 {object} utils.APIResponse "Article not found"
// @Router /api/v1/berita/{id} [delete]
func (h *NewsHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid article ID", err)
		return
	}

	if err := h.newsService.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Article not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to delete article", err)
		return
	}

	utils.SuccessResponse(c, "Article deleted successfully", nil)
}
