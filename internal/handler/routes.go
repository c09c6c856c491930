package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"warga-portal-svc/internal/auth"
	"warga-portal-svc/internal/middleware"
	"warga-portal-svc/internal/service"
	"warga-portal-svc/pkg/logger"
)

// Routes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	codec *auth.SessionCodec,
	authService service.AuthService,
	wargaService service.WargaService,
	newsService service.NewsService,
	jobService service.JobService,
	businessService service.BusinessService,
	dashboardService service.DashboardService,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(authService, logger)
	wargaHandler := NewWargaHandler(wargaService, logger)
	newsHandler := NewNewsHandler(newsService, logger)
	jobHandler := NewJobHandler(jobService, logger)
	businessHandler := NewBusinessHandler(businessService, logger)
	dashboardHandler := NewDashboardHandler(dashboardService, logger)
	userHandler := NewUserHandler(authService, logger)

	requireSession := middleware.RequireSession(codec)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Auth routes
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", authHandler.Logout)
			authRoutes.GET("/me", requireSession, authHandler.Me)
		}

		// Warga routes
		warga := v1.Group("/warga")
		{
			// Public two-factor verification
			warga.POST("/verify", wargaHandler.Verify)

			warga.GET("", requireSession, wargaHandler.List)
			warga.POST("", requireSession,
				middleware.RequireRoles(auth.RoleAdmin, auth.RoleAdminRT),
				wargaHandler.Create)
			warga.PUT("/:id", requireSession,
				middleware.RequireRoles(auth.RoleAdmin, auth.RoleAdminRT, auth.RoleAdminRW),
				wargaHandler.Update)
			warga.DELETE("/:id", requireSession,
				middleware.RequireRoles(auth.RoleAdmin, auth.RoleAdminRT),
				wargaHandler.Delete)
		}

		// News routes
		berita := v1.Group("/berita")
		{
			berita.GET("", newsHandler.List)
			berita.GET("/:slug", newsHandler.GetBySlug)

			manageNews := middleware.RequireRoles(auth.RoleAdmin, auth.RoleAdminRW)
			berita.POST("", requireSession, manageNews, newsHandler.Create)
			berita.PUT("/:id", requireSession, manageNews, newsHandler.Update)
			berita.DELETE("/:id", requireSession, manageNews, newsHandler.Delete)
		}

		// Job posting routes
		loker := v1.Group("/loker")
		{
			loker.GET("", jobHandler.List)

			manageJobs := middleware.RequireRoles(auth.RoleAdmin, auth.RoleAdminRW)
			loker.POST("", requireSession, manageJobs, jobHandler.Create)
			loker.PUT("/:id", requireSession, manageJobs, jobHandler.Update)
			loker.DELETE("/:id", requireSession, manageJobs, jobHandler.Delete)
		}

		// Business directory routes
		umkm := v1.Group("/umkm")
		{
			umkm.GET("", businessHandler.List)

			// Residents may register their own business
			umkm.POST("", requireSession,
				middleware.RequireRoles(auth.RoleAdmin, auth.RoleAdminRW, auth.RoleAdminRT, auth.RoleWarga),
				businessHandler.Create)
			umkm.PUT("/:id", requireSession,
				middleware.RequireRoles(auth.RoleAdmin, auth.RoleAdminRW),
				businessHandler.Update)
			umkm.DELETE("/:id", requireSession,
				middleware.RequireRoles(auth.RoleAdmin, auth.RoleAdminRW),
				businessHandler.Delete)
		}

		// Dashboard routes
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/statistics", requireSession, dashboardHandler.GetStatistics)
		}

		// Account routes
		users := v1.Group("/users")
		users.Use(requireSession, middleware.RequireRoles(auth.RoleSuperAdmin, auth.RoleAdmin))
		{
			users.POST("", userHandler.Create)
			users.GET("", userHandler.List)
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Warga Portal Service",
	})
}
