package integration_tests

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/stresscheck/backend/internal/ai"
	"github.com/stresscheck/backend/internal/catalog"
	"github.com/stresscheck/backend/internal/handler"
	"github.com/stresscheck/backend/internal/report"
	"github.com/stresscheck/backend/internal/repository"
	"github.com/stresscheck/backend/internal/service"
)

// setupTestDatabase starts a PostgreSQL testcontainer and bootstraps the
// schema with the seeded reference data.
func setupTestDatabase(t *testing.T, ctx context.Context) (*pgxpool.Pool, func()) {
	postgresContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("stresscheck_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connString, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	err = repository.Bootstrap(ctx, pool, zap.NewNop(), catalog.New().All(), ai.DefaultPersona())
	require.NoError(t, err)

	cleanup := func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return pool, cleanup
}

// setupRouter wires the full application stack against the given pool.
// Text generation is disabled so feedback endpoints degrade to their
// placeholder texts deterministically.
func setupRouter(pool *pgxpool.Pool) *gin.Engine {
	logger := zap.NewNop()
	cat := catalog.New()

	questionnaireRepo := repository.NewQuestionnaireRepository(pool, logger)
	resultRepo := repository.NewResultRepository(pool, logger)
	settingsRepo := repository.NewSettingsRepository(pool, logger)
	userRepo := repository.NewUserRepository(pool, logger)
	dashboardRepo := repository.NewDashboardRepository(pool, logger)

	builder := report.NewBuilder(cat)
	generator := ai.DisabledGenerator{}

	questionnaireService := service.NewQuestionnaireService(questionnaireRepo, cat, logger)
	assessmentService := service.NewAssessmentService(resultRepo, settingsRepo, userRepo, cat, builder, generator, logger)
	settingsService := service.NewSettingsService(settingsRepo, logger)
	userService := service.NewUserService(userRepo, logger)
	dashboardService := service.NewDashboardService(dashboardRepo, logger)

	questionnaireHandler := handler.NewQuestionnaireHandler(questionnaireService, logger)
	assessmentHandler := handler.NewAssessmentHandler(assessmentService, logger)
	settingsHandler := handler.NewSettingsHandler(settingsService, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
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

	return router
}
