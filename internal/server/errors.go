package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"max.ks1230/fintrack/internal/logger"
	"max.ks1230/fintrack/internal/model/customerr"
)

// abortWithError maps the domain error taxonomy onto status codes. Access
// failures answer 404 so a caller cannot probe which IDs exist under other
// owners.
func abortWithError(c *gin.Context, err error) {
	switch {
	case customerr.IsValidation(err):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case customerr.IsNotFound(err), customerr.IsAccess(err):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
	case customerr.IsDuplicate(err):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
