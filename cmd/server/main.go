package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"warga-portal-svc/docs"
	"warga-portal-svc/internal/auth"
	"warga-portal-svc/internal/config"
	"warga-portal-svc/internal/database"
	"warga-portal-svc/internal/handler"
	"warga-portal-svc/internal/middleware"
	"warga-portal-svc/internal/repository"
	"warga-portal-svc/internal/scheduler"
	"warga-portal-svc/internal/service"
	"warga-portal-svc/internal/sheets"
	"warga-portal-svc/pkg/logger"
)

// @title Warga Portal Service API
// @version 1.0
// @description RESTful API for the neighborhood resident portal
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "Warga Portal Service API"
	docs.SwaggerInfo.Description = "RESTful API for the neighborhood resident portal"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Warga Portal Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize the sheet read cache when redis is enabled; a nil cache
	// makes the client read through on every call
	var sheetCache *sheets.Cache
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			appLogger.WithField("error", err).Fatal("Failed to connect to redis")
		}
		sheetCache = sheets.NewCache(redisClient, time.Duration(cfg.Redis.CacheTTL)*time.Second, appLogger)
		appLogger.Info("Redis sheet cache enabled")
	}

	// Initialize sheets client
	sheetsClient := sheets.NewClient(sheets.Config{
		APIKey:        cfg.Sheets.APIKey,
		SpreadsheetID: cfg.Sheets.SpreadsheetID,
		BaseURL:       cfg.Sheets.BaseURL,
	}, sheetCache, appLogger)

	// Initialize session codec
	codec := auth.NewSessionCodec(cfg.JWT.Secret, appLogger)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.DB)
	wargaRepo := repository.NewSheetWargaRepository(sheetsClient, appLogger)
	newsRepo := repository.NewNewsRepository(db.DB)
	jobRepo := repository.NewJobRepository(db.DB)
	businessRepo := repository.NewBusinessRepository(db.DB)
	dashboardRepo := repository.NewDashboardRepository(db.DB)

	// Initialize services
	authService := service.NewAuthService(userRepo, codec, appLogger)
	wargaService := service.NewWargaService(wargaRepo, appLogger)
	newsService := service.NewNewsService(newsRepo, appLogger)
	jobService := service.NewJobService(jobRepo, appLogger)
	businessService := service.NewBusinessService(businessRepo, appLogger)
	dashboardService := service.NewDashboardService(dashboardRepo, wargaRepo, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(router, codec, authService, wargaService, newsService, jobService, businessService, dashboardService, appLogger)

	// Start the sheet cache warm scheduler
	sheetScheduler := scheduler.NewSheetScheduler(wargaRepo, appLogger, cfg.Scheduler.SheetWarmCronExpression)
	if err := sheetScheduler.Start(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to start sheet scheduler")
	}

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Stop the scheduler before draining requests
	sheetScheduler.Stop()

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			appLogger.WithField("error", err).Error("Failed to close redis connection")
		}
	}

	appLogger.Info("Server exited successfully")
}
