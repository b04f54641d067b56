package handler

import (
	"errors"
	"net/http"

	"foodshare/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// respondRepositoryError translates a repository error into the matching
// client-facing rejection. Anything outside the known taxonomy is a storage
// fault and reported as a 500.
func respondRepositoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrSelfFollow),
		errors.Is(err, repository.ErrUnknownIngredient),
		errors.Is(err, repository.ErrDuplicateIngredient),
		errors.Is(err, repository.ErrEmptyIngredients),
		errors.Is(err, repository.ErrAmountOutOfRange),
		errors.Is(err, repository.ErrCookingTimeOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
