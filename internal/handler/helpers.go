package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stresscheck/backend/internal/service"
)

// ErrorResponse is the JSON error envelope of every non-2xx response
type ErrorResponse struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Details *string `json:"details,omitempty"`
}

// stringPtr creates a pointer to a string
func stringPtr(s string) *string {
	return &s
}

// respondError maps service errors onto the error envelope. Validation
// failures are 400, missing records 404, everything else 500.
func respondError(c *gin.Context, err error) {
	if service.IsValidation(err) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
		})
		return
	}

	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    "NOT_FOUND",
			Message: "Requested record was not found",
			Details: stringPtr(err.Error()),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Details: stringPtr(err.Error()),
	})
}
