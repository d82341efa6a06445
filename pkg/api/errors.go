package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/showforge/showforge/pkg/services"
)

// abortWithServiceError maps service-layer error kinds to HTTP responses.
func abortWithServiceError(c *gin.Context, err error) {
	kind := services.KindOf(err)

	var status int
	switch kind {
	case services.KindValidation:
		status = http.StatusUnprocessableEntity
	case services.KindNotFound:
		status = http.StatusNotFound
	case services.KindConflict:
		status = http.StatusConflict
	case services.KindRateLimited:
		status = http.StatusTooManyRequests
	default:
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(status, gin.H{"error": err.Error(), "kind": string(kind)})
}
