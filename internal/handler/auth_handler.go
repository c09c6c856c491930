package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"warga-portal-svc/internal/auth"
	"warga-portal-svc/internal/middleware"
	"warga-portal-svc/internal/service"
	"warga-portal-svc/pkg/logger"
	"warga-portal-svc/pkg/utils"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ketua@rw16.id"`
	Password string `json:"password" binding:"required" example:"rahasia"`
}

// Login handles POST /api/v1/auth/login
// @Summary Log in with email and password
// @Description Verifies credentials and sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=response.LoginResponse} "Login successful"
// @Failure 400 {object} utils.APIResponse "Invalid payload"
// @Failure 401 {object} utils.APIResponse "Invalid credentials"
// @Failure 403 {object} utils.APIResponse "Account inactive or unsubscribed"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Email and password are required", err)
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			utils.UnauthorizedResponse(c, "Invalid email or password")
		case errors.Is(err, service.ErrAccountInactive):
			utils.ForbiddenResponse(c, "Account is inactive")
		case errors.Is(err, service.ErrSubscriptionExpired):
			utils.ForbiddenResponse(c, "Subscription is not active")
		default:
			h.logger.WithError(err).Error("Login failed")
			utils.InternalServerErrorResponse(c, "Failed to log in", err)
		}
		return
	}

	h.setSessionCookie(c, token, int(auth.SessionMaxAge.Seconds()))
	utils.SuccessResponse(c, "Login successful", user)
}

// Logout handles POST /api/v1/auth/logout
// @Summary Log out
// @Description Deletes the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse "Logged out"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	utils.SuccessResponse(c, "Logged out", nil)
}

// Me handles GET /api/v1/auth/me
// @Summary Get the current session user
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse{data=auth.SessionUser} "Session user"
// @Failure 401 {object} utils.APIResponse "No session"
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.SessionUser(c)
	if user == nil {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}
	utils.SuccessResponse(c, "Session user retrieved", user)
}

// setSessionCookie writes the session cookie with the portal's attributes.
// Secure is tied to release mode so local development over http still works.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, token, maxAge, "/", "", gin.Mode() == gin.ReleaseMode, true)
}
