package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/smartdropperofficial/taxapi/internal/config"
)

// AuthMiddleware guards admin routes with the configured API key.
// Clients send `Authorization: Bearer <key>`; the key is verified against
// the bcrypt hash in config so the plain key is never stored server-side.
func AuthMiddleware(cfg config.APIConfig, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.AdminKeyHash == "" {
			logger.Error("ADMIN_API_KEY_HASH is not configured, rejecting request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		header := c.GetHeader("Authorization")
		apiKey := strings.TrimPrefix(header, "Bearer ")
		if apiKey == "" || apiKey == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(cfg.AdminKeyHash), []byte(apiKey)); err != nil {
			logger.Warn("Invalid admin API key", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Next()
	}
}
