package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"warga-portal-svc/internal/middleware"
	"warga-portal-svc/internal/models"
	"warga-portal-svc/internal/repository"
	"warga-portal-svc/internal/service"
	"warga-portal-svc/pkg/logger"
	"warga-portal-svc/pkg/utils"
)

// WargaHandler handles resident registry HTTP requests
type WargaHandler struct {
	wargaService service.WargaService
	logger       *logger.Logger
}

// NewWargaHandler creates a new warga handler
func NewWargaHandler(wargaService service.WargaService, logger *logger.Logger) *WargaHandler {
	return &WargaHandler{
		wargaService: wargaService,
		logger:       logger,
	}
}

// WargaRequest is the create/update payload for a resident
type WargaRequest struct {
	NIK              string `json:"nik" binding:"required" example:"3277010101000001"`
	NoKK             string `json:"no_kk" binding:"required" example:"3277010101000001"`
	Nama             string `json:"nama" binding:"required" example:"Budi Santoso"`
	JenisKelamin     string `json:"jenis_kelamin" example:"L"`
	TempatLahir      string `json:"tempat_lahir" example:"Bandung"`
	TanggalLahir     string `json:"tanggal_lahir" example:"1990-01-01"`
	Alamat           string `json:"alamat" example:"Jl. Melati No. 1"`
	RtAkses          string `json:"rt_akses" example:"01"`
	RwAkses          string `json:"rw_akses" example:"16"`
	Kelurahan        string `json:"kelurahan" example:"Sukamaju"`
	Kecamatan        string `json:"kecamatan" example:"Cibeunying"`
	Agama            string `json:"agama" example:"Islam"`
	StatusPerkawinan string `json:"status_perkawinan" example:"Kawin"`
	Pekerjaan        string `json:"pekerjaan" example:"Wiraswasta"`
	Kewarganegaraan  string `json:"kewarganegaraan" example:"WNI"`
	NoHP             string `json:"no_hp" example:"08123456789"`
}

// VerifyWargaRequest is the public two-factor lookup payload
type VerifyWargaRequest struct {
	NIK  string `json:"nik" binding:"required" example:"3277010101000001"`
	NoKK string `json:"no_kk" binding:"required" example:"3277010101000001"`
}

// toModel copies a request payload onto a resident model
func (r *WargaRequest) toModel(id int) *models.Warga {
	return &models.Warga{
		ID:               id,
		NIK:              r.NIK,
		NoKK:             r.NoKK,
		Nama:             r.Nama,
		JenisKelamin:     r.JenisKelamin,
		TempatLahir:      r.TempatLahir,
		TanggalLahir:     r.TanggalLahir,
		Alamat:           r.Alamat,
		RtAkses:          r.RtAkses,
		RwAkses:          r.RwAkses,
		Kelurahan:        r.Kelurahan,
		Kecamatan:        r.Kecamatan,
		Agama:            r.Agama,
		StatusPerkawinan: r.StatusPerkawinan,
		Pekerjaan:        r.Pekerjaan,
		Kewarganegaraan:  r.Kewarganegaraan,
		NoHP:             r.NoHP,
	}
}

// List handles GET /api/v1/warga
// @Summary List residents visible to the session user
// @Description Returns residents scoped by role with identifier fields masked
// @Tags warga
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]models.Warga} "Residents retrieved"
// @Failure 401 {object} utils.APIResponse "No session"
// @Router /api/v1/warga [get]
func (h *WargaHandler) List(c *gin.Context) {
	user := middleware.SessionUser(c)
	records := h.wargaService.List(c.Request.Context(), user)
	utils.SuccessResponse(c, "Warga retrieved successfully", records)
}

// Create handles POST /api/v1/warga
// @Summary Register a new resident
// @Tags warga
// @Accept json
// @Produce json
// @Param request body WargaRequest true "Resident"
// @Success 201 {object} utils.APIResponse{data=models.Warga} "Resident created"
// @Failure 400 {object} utils.APIResponse "Validation failure"
// @Failure 401 {object} utils.APIResponse "No session"
// @Failure 403 {object} utils.APIResponse "Insufficient role"
// @Router /api/v1/warga [post]
func (h *WargaHandler) Create(c *gin.Context) {
	var req WargaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid warga payload", err)
		return
	}

	user := middleware.SessionUser(c)
	created, err := h.wargaService.Create(c.Request.Context(), user, req.toModel(0))
	if err != nil {
		if errors.Is(err, service.ErrWargaValidation) {
			utils.BadRequestResponse(c, "Missing required warga fields", err)
			return
		}
		h.logger.WithError(err).Error("Failed to create warga")
		utils.InternalServerErrorResponse(c, "Failed to create warga", err)
		return
	}

	utils.CreatedResponse(c, "Warga created successfully", created)
}

// Update handles PUT /api/v1/warga/:id
// @Summary Update a resident
// @Tags warga
// @Accept json
// @Produce json
// @Param id path int true "Warga ID"
// @Param request body WargaRequest true "Resident"
// @Success 200 {object} utils.APIResponse{data=models.Warga} "Resident updated"
// @Failure 400 {object} utils.APIResponse "Invalid payload"
// @Failure 403 {object} utils.APIResponse "Outside caller scope"
// @Failure 404 {object} utils.APIResponse "Resident not found"
// @Router /api/v1/warga/{id} [put]
func (h *WargaHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid warga ID", err)
		return
	}

	var req WargaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid warga payload", err)
		return
	}

	user := middleware.SessionUser(c)
	updated, err := h.wargaService.Update(c.Request.Context(), user, req.toModel(id))
	if err != nil {
		h.respondWargaError(c, err, id)
		return
	}

	utils.SuccessResponse(c, "Warga updated successfully", updated)
}

// Delete handles DELETE /api/v1/warga/:id
// @Summary Deactivate a resident
// @Description Soft delete: flips the status flag, the row is kept
// @Tags warga
// @Produce json
// @Param id path int true "Warga ID"
// @Success 200 {object} utils.APIResponse "Resident deactivated"
// @Failure 403 {object} utils.APIResponse "Outside caller scope"
// @Failure 404 {object} utils.APIResponse "Resident not found"
// @Router /api/v1/warga/{id} [delete]
func (h *WargaHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid warga ID", err)
		return
	}

	user := middleware.SessionUser(c)
	if err := h.wargaService.Deactivate(c.Request.Context(), user, id); err != nil {
		h.respondWargaError(c, err, id)
		return
	}

	utils.SuccessResponse(c, "Warga deactivated successfully", nil)
}

// Verify handles POST /api/v1/warga/verify (public)
// @Summary Verify a resident by NIK and family-card number
// @Description Returns masked resident data on an exact two-factor match. The
// @Description not-found message is identical for misses and upstream errors.
// @Tags warga
// @Accept json
// @Produce json
// @Param request body VerifyWargaRequest true "Identifiers"
// @Success 200 {object} utils.APIResponse{data=response.VerifyWargaResponse} "Match found"
// @Failure 400 {object} utils.APIResponse "Invalid payload"
// @Failure 404 {object} utils.APIResponse "No match"
// @Router /api/v1/warga/verify [post]
func (h *WargaHandler) Verify(c *gin.Context) {
	var req VerifyWargaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "NIK and KK number are required", err)
		return
	}

	// Every attempt is logged with masked identifiers and the caller's IP
	h.logger.WithFields(map[string]interface{}{
		"nik":       service.MaskIdentifier(req.NIK),
		"no_kk":     service.MaskIdentifier(req.NoKK),
		"client_ip": c.ClientIP(),
	}).Info("Warga verification attempt")

	result, err := h.wargaService.Verify(c.Request.Context(), req.NIK, req.NoKK)
	if err != nil {
		// Miss and upstream failure are deliberately indistinguishable here
		utils.NotFoundResponse(c, "Data warga tidak ditemukan")
		return
	}

	utils.SuccessResponse(c, "Warga verified successfully", result)
}

// respondWargaError maps service errors to response envelopes
func (h *WargaHandler) respondWargaError(c *gin.Context, err error, id int) {
	switch {
	case errors.Is(err, repository.ErrWargaNotFound):
		utils.NotFoundResponse(c, "Warga not found")
	case errors.Is(err, service.ErrOutOfScope):
		utils.ForbiddenResponse(c, "Warga is outside your RT/RW scope")
	case errors.Is(err, service.ErrWargaValidation):
		utils.BadRequestResponse(c, "Missing required warga fields", err)
	default:
		h.logger.WithError(err).WithField("warga_id", id).Error("Warga operation failed")
		utils.InternalServerErrorResponse(c, "Warga operation failed", err)
	}
}
