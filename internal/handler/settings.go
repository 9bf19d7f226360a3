package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stresscheck/backend/internal/ai"
	"github.com/stresscheck/backend/internal/service"
)

// SettingsHandler implements AI settings API endpoints
type SettingsHandler struct {
	service *service.SettingsService
	logger  *zap.Logger
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(service *service.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		logger:  logger,
	}
}

// UpdateSettingsRequest is the payload for replacing the AI settings
type UpdateSettingsRequest struct {
	Persona      string `json:"persona"`
	CustomPrompt string `json:"custom_prompt"`
	LogoURL      string `json:"logo_url"`
}

// Get returns the current AI settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load ai settings", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Update replaces the AI settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Invalid request body",
			Details: stringPtr(err.Error()),
		})
		return
	}

	settings, err := h.service.Update(c.Request.Context(), req.Persona, req.CustomPrompt, req.LogoURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Personas lists the built-in persona presets
func (h *SettingsHandler) Personas(c *gin.Context) {
	c.JSON(http.StatusOK, ai.PersonaOptions)
}
