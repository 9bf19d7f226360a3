package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stresscheck/backend/internal/service"
)

const defaultTrendDays = 90

// DashboardHandler implements staff dashboard API endpoints
type DashboardHandler struct {
	service *service.DashboardService
	logger  *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger,
	}
}

// Trend returns the stress trend of one respondent. The optional days
// query parameter defaults to 90.
func (h *DashboardHandler) Trend(c *gin.Context) {
	userID := c.Param("id")

	days := defaultTrendDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    "VALIDATION_ERROR",
				Message: "days must be an integer",
				Details: stringPtr(err.Error()),
			})
			return
		}
		days = parsed
	}

	summary, err := h.service.GetTrend(c.Request.Context(), userID, days)
	if err != nil {
		h.logger.Error("failed to build trend summary",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
