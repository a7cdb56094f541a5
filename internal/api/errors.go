package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamasaathi/backend/internal/service"
	"github.com/mamasaathi/backend/internal/store"
)

// writeError maps the error taxonomy onto HTTP responses. Store errors carry
// their own short messages; generation failures collapse into one generic
// unavailable message so nothing from the external service leaks to users.
func writeError(c *gin.Context, err error) {
	var (
		authErr *store.AuthError
		regErr  *store.RegistrationError
		nfErr   *store.NotFoundError
		genErr  *service.GenerationError
	)

	switch {
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Reason})
	case errors.As(err, &regErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": regErr.Reason})
	case errors.As(err, &nfErr):
		c.JSON(http.StatusNotFound, gin.H{"error": nfErr.Error()})
	case errors.Is(err, service.ErrIncompleteProfile), errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &genErr):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "The service is currently unavailable. Please try again."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred."})
	}
}
