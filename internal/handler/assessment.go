package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stresscheck/backend/internal/service"
	"github.com/stresscheck/backend/pkg/model"
)

// AssessmentHandler implements assessment submission and feedback endpoints
type AssessmentHandler struct {
	service *service.AssessmentService
	logger  *zap.Logger
}

// NewAssessmentHandler creates a new AssessmentHandler
func NewAssessmentHandler(service *service.AssessmentService, logger *zap.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		service: service,
		logger:  logger,
	}
}

// SubmitRequest is the payload for submitting a completed questionnaire
type SubmitRequest struct {
	UserID  string         `json:"user_id"`
	Answers []model.Answer `json:"answers"`
}

// FeedbackResponse carries generated narrative text
type FeedbackResponse struct {
	Text string `json:"text"`
}

// Submit scores an answer set and stores the result
func (h *AssessmentHandler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Invalid request body",
			Details: stringPtr(err.Error()),
		})
		return
	}

	result, err := h.service.Submit(c.Request.Context(), req.UserID, req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// History returns a respondent's results ascending by date
func (h *AssessmentHandler) History(c *gin.Context) {
	userID := c.Param("id")

	results, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to load result history",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// GenerateFeedback produces narrative feedback for one result
func (h *AssessmentHandler) GenerateFeedback(c *gin.Context) {
	resultID := c.Param("id")

	text, err := h.service.GenerateFeedback(c.Request.Context(), resultID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, FeedbackResponse{Text: text})
}

// StaffReport produces a staff-facing analysis over a respondent's history
func (h *AssessmentHandler) StaffReport(c *gin.Context) {
	userID := c.Param("id")

	text, err := h.service.GenerateStaffReport(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, FeedbackResponse{Text: text})
}
