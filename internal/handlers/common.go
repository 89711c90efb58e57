package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"golang-coffee-backend/internal/pricing"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON error envelope shared by all handlers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// respondError maps the well-known pricing errors to their HTTP statuses;
// anything else falls through to the given default.
func respondError(c *gin.Context, defaultStatus int, title string, err error) {
	status := defaultStatus
	switch {
	case errors.Is(err, pricing.ErrInvalidVoucher):
		status = http.StatusBadRequest
	case errors.Is(err, pricing.ErrConflictingDiscount):
		status = http.StatusConflict
	case errors.Is(err, pricing.ErrEmptyCart):
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, ErrorResponse{
		Error:   title,
		Message: err.Error(),
	})
}

func queryInt(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return value
}
