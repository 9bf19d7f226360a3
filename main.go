package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/stresscheck/backend/internal/ai"
	"github.com/stresscheck/backend/internal/catalog"
	"github.com/stresscheck/backend/internal/config"
	"github.com/stresscheck/backend/internal/handler"
	"github.com/stresscheck/backend/internal/middleware"
	"github.com/stresscheck/backend/internal/report"
	"github.com/stresscheck/backend/internal/repository"
	"github.com/stresscheck/backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize Zap logger
	var logger *zap.Logger
	if cfg.Server.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded successfully",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
	)

	// Initialize database connection pool with pgx
	pool, err := pgxpool.New(context.Background(), cfg.Database.URL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	// Test database connection
	if err := pool.Ping(context.Background()); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}
	logger.Info("Successfully connected to database")

	// Load the question catalog and mirror it into the database
	cat := catalog.New()
	if err := repository.Bootstrap(context.Background(), pool, logger, cat.All(), ai.DefaultPersona()); err != nil {
		logger.Fatal("Failed to bootstrap database schema", zap.Error(err))
	}

	// Initialize repositories
	questionnaireRepo := repository.NewQuestionnaireRepository(pool, logger)
	resultRepo := repository.NewResultRepository(pool, logger)
	settingsRepo := repository.NewSettingsRepository(pool, logger)
	userRepo := repository.NewUserRepository(pool, logger)
	dashboardRepo := repository.NewDashboardRepository(pool, logger)

	// Initialize text generation. Without an API key feedback endpoints
	// degrade to placeholder text instead of failing.
	var generator ai.Generator = ai.DisabledGenerator{}
	if cfg.AI.APIKey != "" {
		client, err := ai.NewOpenAIClient(cfg.AI.Endpoint, cfg.AI.APIKey, cfg.AI.Model, logger)
		if err != nil {
			logger.Fatal("Failed to initialize OpenAI client", zap.Error(err))
		}
		generator = ai.NewOpenAIGenerator(client, logger)
	} else {
		logger.Warn("No AI API key configured, feedback generation is disabled")
	}

	// Initialize services
	builder := report.NewBuilder(cat)
	questionnaireService := service.NewQuestionnaireService(questionnaireRepo, cat, logger)
	assessmentService := service.NewAssessmentService(resultRepo, settingsRepo, userRepo, cat, builder, generator, logger)
	settingsService := service.NewSettingsService(settingsRepo, logger)
	userService := service.NewUserService(userRepo, logger)
	dashboardService := service.NewDashboardService(dashboardRepo, logger)

	// Initialize handlers
	questionnaireHandler := handler.NewQuestionnaireHandler(questionnaireService, logger)
	assessmentHandler := handler.NewAssessmentHandler(assessmentService, logger)
	settingsHandler := handler.NewSettingsHandler(settingsService, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	r := gin.New()

	// Add recovery middleware (must be first)
	r.Use(middleware.RecoveryMiddleware(logger))

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Configure appropriately for production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add request ID middleware
	r.Use(middleware.RequestIDMiddleware())

	// Add request logging middleware
	r.Use(middleware.RequestLoggingMiddleware(logger))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			logger.Error("health check failed: database unreachable", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "disconnected",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "connected",
			"service":  "stresscheck-backend",
			"version":  "1.0.0",
		})
	})

	// API routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/questionnaires", questionnaireHandler.List)
		v1.POST("/questionnaires", questionnaireHandler.Create)
		v1.GET("/questionnaires/active", questionnaireHandler.Active)
		v1.POST("/questionnaires/:id/activate", questionnaireHandler.Activate)
		v1.DELETE("/questionnaires/:id", questionnaireHandler.Delete)

		v1.POST("/assessments", assessmentHandler.Submit)
		v1.POST("/results/:id/feedback", assessmentHandler.GenerateFeedback)

		v1.GET("/users", userHandler.List)
		v1.POST("/users", userHandler.Create)
		v1.GET("/users/:id", userHandler.Get)
		v1.DELETE("/users/:id", userHandler.Delete)
		v1.GET("/users/:id/results", assessmentHandler.History)
		v1.GET("/users/:id/report", assessmentHandler.StaffReport)
		v1.GET("/users/:id/dashboard", dashboardHandler.Trend)

		v1.GET("/settings/ai", settingsHandler.Get)
		v1.PUT("/settings/ai", settingsHandler.Update)
		v1.GET("/settings/personas", settingsHandler.Personas)
	}

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
