package http

import (
	"errors"
	"net/http"

	"ink-press/internal/entity"
	"ink-press/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses: validation failures to
// 422 with per-field messages, missing entities to 404, anything else to 500.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
		return
	}

	if errors.Is(err, entity.ErrCategoryNotFound) || errors.Is(err, entity.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	log.Error("Unexpected error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
