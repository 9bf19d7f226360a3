package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stresscheck/backend/internal/service"
	"github.com/stresscheck/backend/pkg/model"
)

// QuestionnaireHandler implements questionnaire template API endpoints
type QuestionnaireHandler struct {
	service *service.QuestionnaireService
	logger  *zap.Logger
}

// NewQuestionnaireHandler creates a new QuestionnaireHandler
func NewQuestionnaireHandler(service *service.QuestionnaireService, logger *zap.Logger) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		service: service,
		logger:  logger,
	}
}

// CreateQuestionnaireRequest is the payload for creating a template
type CreateQuestionnaireRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	QuestionIDs []int  `json:"question_ids"`
}

// ActiveQuestionnaireResponse bundles the active template with its
// resolved questions in template order
type ActiveQuestionnaireResponse struct {
	Questionnaire *model.Questionnaire `json:"questionnaire"`
	Questions     []model.Question     `json:"questions"`
}

// DeleteQuestionnaireResponse reports the delete-policy outcome
type DeleteQuestionnaireResponse struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message,omitempty"`
}

// List returns all questionnaire templates
func (h *QuestionnaireHandler) List(c *gin.Context) {
	questionnaires, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list questionnaires", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, questionnaires)
}

// Create adds a new questionnaire template
func (h *QuestionnaireHandler) Create(c *gin.Context) {
	var req CreateQuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Invalid request body",
			Details: stringPtr(err.Error()),
		})
		return
	}

	questionnaire, err := h.service.Create(c.Request.Context(), req.Name, req.Description, req.QuestionIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, questionnaire)
}

// Activate makes the target template the single active one
func (h *QuestionnaireHandler) Activate(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Activate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activated": id})
}

// Delete removes a template unless it is default or active
func (h *QuestionnaireHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response := DeleteQuestionnaireResponse{Deleted: deleted}
	if !deleted {
		response.Message = "default or active questionnaires cannot be deleted"
	}

	c.JSON(http.StatusOK, response)
}

// Active returns the active template with its resolved questions
func (h *QuestionnaireHandler) Active(c *gin.Context) {
	questionnaire, questions, err := h.service.ActiveQuestionSet(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ActiveQuestionnaireResponse{
		Questionnaire: questionnaire,
		Questions:     questions,
	})
}
