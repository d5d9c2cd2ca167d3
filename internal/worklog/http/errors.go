package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workmemory/worklog-backend/internal/worklog/domain"
)

// writeError maps domain sentinel errors onto HTTP status codes. Nothing is
// swallowed: unknown errors surface as 500s with their message.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrIntegrity):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
