package handler

import (
	"github.com/gin-gonic/gin"

	"warga-portal-svc/internal/middleware"
	"warga-portal-svc/internal/service"
	"warga-portal-svc/pkg/logger"
	"warga-portal-svc/pkg/utils"
)

// DashboardHandler handles dashboard statistics HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetStatistics handles GET /api/v1/dashboard/statistics
// @Summary Get dashboard statistics for the session user
// @Description Counts are scoped to the caller's RT/RW visibility
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.DashboardStatisticsResponse} "Statistics retrieved"
// @Failure 401 {object} utils.APIResponse "No session"
// @Router /api/v1/dashboard/statistics [get]
func (h *DashboardHandler) GetStatistics(c *gin.Context) {
	user := middleware.SessionUser(c)
	stats, err := h.dashboardService.GetStatistics(c.Request.Context(), user)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get dashboard statistics", err)
		return
	}
	utils.SuccessResponse(c, "Dashboard statistics retrieved successfully", stats)
}
