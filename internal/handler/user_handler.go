package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"warga-portal-svc/internal/models"
	"warga-portal-svc/internal/service"
	"warga-portal-svc/pkg/logger"
	"warga-portal-svc/pkg/utils"
)

// UserHandler handles portal account HTTP requests
type UserHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService service.AuthService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		authService: authService,
		logger:      logger,
	}
}

// CreateUserRequest is the account creation payload
type CreateUserRequest struct {
	Email           string `json:"email" binding:"required,email" example:"admin.rt01@rw16.id"`
	Password        string `json:"password" binding:"required,min=8" example:"rahasia123"`
	Nama            string `json:"nama" binding:"required" example:"Pak Ahmad"`
	Role            string `json:"role" binding:"required" example:"admin_rt"`
	RtAkses         string `json:"rt_akses" example:"01"`
	RwAkses         string `json:"rw_akses" example:"16"`
	StatusLangganan string `json:"status_langganan" example:"active"`
}

// Create handles POST /api/v1/users
// @Summary Create a portal account
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Account"
// @Success 201 {object} utils.APIResponse{data=models.User} "Account created"
// @Failure 400 {object} utils.APIResponse "Validation failure"
// @Failure 403 {object} utils.APIResponse "Insufficient role"
// @Router /api/v1/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid account payload", err)
		return
	}

	created, err := h.authService.CreateUser(&models.User{
		Email:           req.Email,
		Nama:            req.Nama,
		Role:            req.Role,
		RtAkses:         req.RtAkses,
		RwAkses:         req.RwAkses,
		StatusAktif:     true,
		StatusLangganan: req.StatusLangganan,
	}, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			utils.BadRequestResponse(c, "Role is not recognized", err)
		case errors.Is(err, service.ErrMissingAkses):
			utils.BadRequestResponse(c, "RT/RW access codes are required for this role", err)
		case errors.Is(err, service.ErrEmailTaken):
			utils.BadRequestResponse(c, "Email is already registered", err)
		default:
			h.logger.WithError(err).Error("Failed to create account")
			utils.InternalServerErrorResponse(c, "Failed to create account", err)
		}
		return
	}

	utils.CreatedResponse(c, "Account created successfully", created)
}

// List handles GET /api/v1/users
// @Summary List portal accounts
// @Tags users
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]models.User} "Accounts retrieved"
// @Failure 403 {object} utils.APIResponse "Insufficient role"
// @Router /api/v1/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.authService.GetUsers()
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to list accounts", err)
		return
	}
	utils.SuccessResponse(c, "Accounts retrieved successfully", users)
}
