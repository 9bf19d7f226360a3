package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stresscheck/backend/internal/service"
	"github.com/stresscheck/backend/pkg/model"
)

// UserHandler implements user management API endpoints
type UserHandler struct {
	service *service.UserService
	logger  *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// CreateUserRequest is the payload for creating a user
type CreateUserRequest struct {
	Name            string     `json:"name"`
	Role            model.Role `json:"role"`
	AssignedStaffID string     `json:"assigned_staff_id"`
}

// DeleteUserResponse reports whether the user existed
type DeleteUserResponse struct {
	Deleted bool `json:"deleted"`
}

// List returns all users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// Create adds a user
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Invalid request body",
			Details: stringPtr(err.Error()),
		})
		return
	}

	user, err := h.service.Create(c.Request.Context(), req.Name, req.Role, req.AssignedStaffID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Get retrieves a single user
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete removes a user and their results
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteUserResponse{Deleted: deleted})
}
