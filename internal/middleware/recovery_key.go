package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RecoveryKeyMiddleware gates the email-only admin password reset behind a
// shared recovery key supplied in the X-Recovery-Key header. An empty
// configured key disables the route outright.
func RecoveryKeyMiddleware(recoveryKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		if recoveryKey == "" {
			logger.Warn("Recovery route called but no recovery key is configured")
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		supplied := c.GetHeader("X-Recovery-Key")
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(recoveryKey)) != 1 {
			logger.Warn("Recovery key mismatch")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}
