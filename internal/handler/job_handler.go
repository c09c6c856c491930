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

// JobHandler handles job posting HTTP requests
type JobHandler struct {
	jobService service.JobService
	logger     *logger.Logger
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService service.JobService, logger *logger.Logger) *JobHandler {
	return &JobHandler{
		jobService: jobService,
		logger:     logger,
	}
}

// JobRequest is the create/update payload for a posting
type JobRequest struct {
	Judul      string `json:"judul" binding:"required" example:"Kasir Toko"`
	Perusahaan string `json:"perusahaan" binding:"required" example:"Toko Berkah"`
	Lokasi     string `json:"lokasi" example:"RW 16"`
	Deskripsi  string `json:"deskripsi"`
	Kontak     string `json:"kontak" binding:"required" example:"08123456789"`
	Kadaluarsa string `json:"kadaluarsa" example:"2026-10-01"`
}

// List handles GET /api/v1/loker
// @Summary List active job postings
// @Tags loker
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]models.JobPosting} "Postings retrieved"
// @Router /api/v1/loker [get]
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobService.GetActive()
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to list job postings", err)
		return
	}
	utils.SuccessResponse(c, "Job postings retrieved successfully", jobs)
}

// Create handles POST /api/v1/loker
// @Summary Create a job posting
// @Tags loker
// @Accept json
// @Produce json
// @Param request body JobRequest true "Posting"
// @Success 201 {object} utils.APIResponse{data=models.JobPosting} "Posting created"
// @Failure 400 {object} utils.APIResponse "Validation failure"
// @Router /api/v1/loker [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid posting payload", err)
		return
	}

	job := &models.JobPosting{
		Judul:      req.Judul,
		Perusahaan: req.Perusahaan,
		Lokasi:     req.Lokasi,
		Deskripsi:  req.Deskripsi,
		Kontak:     req.Kontak,
	}
	if req.Kadaluarsa != "" {
		expiry, err := time.Parse("2006-01-02", req.Kadaluarsa)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid expiry date, expected YYYY-MM-DD", err)
			return
		}
		job.Kadaluarsa = &expiry
	}

	created, err := h.jobService.Create(job)
	if err != nil {
		if errors.Is(err, service.ErrJobValidation) {
			utils.BadRequestResponse(c, "Missing required posting fields", err)
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to create posting", err)
		return
	}

	utils.CreatedResponse(c, "Job posting created successfully", created)
}

// Update handles PUT /api/v1/loker/:id
// @Summary Update a job posting
// @Tags loker
// @Accept json
// @Produce json
// @Param id path int true "Posting ID"
// @Param request body JobRequest true "Posting"
// @Success 200 {object} utils.APIResponse{data=models.JobPosting} "Posting updated"
// @Failure 404 {object} utils.APIResponse "Posting not found"
// @Router /api/v1/loker/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid posting ID", err)
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid posting payload", err)
		return
	}

	job := &models.JobPosting{
		ID:         uint(id),
		Judul:      req.Judul,
		Perusahaan: req.Perusahaan,
		Lokasi:     req.Lokasi,
		Deskripsi:  req.Deskripsi,
		Kontak:     req.Kontak,
		Aktif:      true,
	}
	if req.Kadaluarsa != "" {
		expiry, err := time.Parse("2006-01-02", req.Kadaluarsa)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid expiry date, expected YYYY-MM-DD", err)
			return
		}
		job.Kadaluarsa = &expiry
	}

	updated, err := h.jobService.Update(job)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Posting not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to update posting", err)
		return
	}

	utils.SuccessResponse(c, "Job posting updated successfully", updated)
}

// Delete handles DELETE /api/v1/loker/:id
// @Summary Delete a job posting
// @Tags loker
// @Produce json
// @Param id path int true "Posting ID"
// @Success 200 {object} utils.APIResponse "Posting deleted"
// @Failure 404 {object} utils.APIResponse "Posting not found"
// @Router /api/v1/loker/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid posting ID", err)
		return
	}

	if err := h.jobService.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Posting not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to delete posting", err)
		return
	}

	utils.SuccessResponse(c, "Job posting deleted successfully", nil)
}
