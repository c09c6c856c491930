package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"warga-portal-svc/internal/middleware"
	"warga-portal-svc/internal/models"
	"warga-portal-svc/internal/service"
	"warga-portal-svc/pkg/logger"
	"warga-portal-svc/pkg/utils"
)

// BusinessHandler handles UMKM directory HTTP requests
type BusinessHandler struct {
	businessService service.BusinessService
	logger          *logger.Logger
}

// NewBusinessHandler creates a new business handler
func NewBusinessHandler(businessService service.BusinessService, logger *logger.Logger) *BusinessHandler {
	return &BusinessHandler{
		businessService: businessService,
		logger:          logger,
	}
}

// BusinessRequest is the create/update payload for a directory entry
type BusinessRequest struct {
	Nama      string `json:"nama" binding:"required" example:"Warung Bu Siti"`
	Pemilik   string `json:"pemilik" binding:"required" example:"Siti Aminah"`
	Kategori  string `json:"kategori" binding:"required" example:"kuliner"`
	Deskripsi string `json:"deskripsi"`
	NoHP      string `json:"no_hp" example:"08123456789"`
	Alamat    string `json:"alamat"`
	RtAkses   string `json:"rt_akses" example:"01"`
	RwAkses   string `json:"rw_akses" example:"16"`
}

// List handles GET /api/v1/umkm
// @Summary List directory entries
// @Tags umkm
// @Produce json
// @Param kategori query string false "Category filter"
// @Success 200 {object} utils.APIResponse{data=[]models.Business} "Entries retrieved"
// @Router /api/v1/umkm [get]
func (h *BusinessHandler) List(c *gin.Context) {
	businesses, err := h.businessService.GetAll(c.Query("kategori"))
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to list businesses", err)
		return
	}
	utils.SuccessResponse(c, "Businesses retrieved successfully", businesses)
}

// Create handles POST /api/v1/umkm
// @Summary Register a business
// @Tags umkm
// @Accept json
// @Produce json
// @Param request body BusinessRequest true "Business"
// @Success 201 {object} utils.APIResponse{data=models.Business} "Entry created"
// @Failure 400 {object} utils.APIResponse "Validation failure"
// @Router /api/v1/umkm [post]
func (h *BusinessHandler) Create(c *gin.Context) {
	var req BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid business payload", err)
		return
	}

	user := middleware.SessionUser(c)
	created, err := h.businessService.Create(user, &models.Business{
		Nama:      req.Nama,
		Pemilik:   req.Pemilik,
		Kategori:  req.Kategori,
		Deskripsi: req.Deskripsi,
		NoHP:      req.NoHP,
		Alamat:    req.Alamat,
		RtAkses:   req.RtAkses,
		RwAkses:   req.RwAkses,
	})
	if err != nil {
		if errors.Is(err, service.ErrBusinessValidation) {
			utils.BadRequestResponse(c, "Missing required business fields", err)
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to create business", err)
		return
	}

	utils.CreatedResponse(c, "Business created successfully", created)
}

// Update handles PUT /api/v1/umkm/:id
// @Summary Update a directory entry
// @Tags umkm
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param request body BusinessRequest true "Business"
// @Success 200 {object} utils.APIResponse{data=models.Business} "Entry updated"
// @Failure 404 {object} utils.APIResponse "Entry not found"
// @Router /api/v1/umkm/{id} [put]
func (h *BusinessHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid entry ID", err)
		return
	}

	var req BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid business payload", err)
		return
	}

	updated, err := h.businessService.Update(&models.Business{
		ID:        uint(id),
		Nama:      req.Nama,
		Pemilik:   req.Pemilik,
		Kategori:  req.Kategori,
		Deskripsi: req.Deskripsi,
		NoHP:      req.NoHP,
		Alamat:    req.Alamat,
		RtAkses:   req.RtAkses,
		RwAkses:   req.RwAkses,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Entry not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to update entry", err)
		return
	}

	utils.SuccessResponse(c, "Business updated successfully", updated)
}

// Delete handles DELETE /api/v1/umkm/:id
// @Summary Delete a directory entry
// @Tags umkm
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} utils.APIResponse "Entry deleted"
// @Failure 404 {object} utils.APIResponse "Entry not found"
// @Router /api/v1/umkm/{id} [delete]
func (h *BusinessHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid entry ID", err)
		return
	}

	if err := h.businessService.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Entry not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to delete entry", err)
		return
	}

	utils.SuccessResponse(c, "Business deleted successfully", nil)
}
