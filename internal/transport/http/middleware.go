package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vivaleve/internal/application/usecase"
	"vivaleve/internal/infrastructure/security"
	"vivaleve/internal/metrics"
)

// AuthMiddleware validates the Bearer token and checks it names the
// currently active session: a token from a previous session is useless
// after logout even though it has not expired.
func AuthMiddleware(tokens *security.TokenManager, session *usecase.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		email, err := tokens.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if session.Email() != email {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No active session for this token"})
			return
		}

		c.Set("email", email)
		c.Next()
	}
}

func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start).Seconds()

		metrics.ReqCount.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()
		metrics.ReqDuration.WithLabelValues(c.Request.Method, path).Observe(duration)

		log.Info("http_request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Float64("duration", duration),
		)
	}
}

func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic_recovered", zap.Any("panic", r))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				c.Abort()
			}
		}()
		c.Next()
	}
}
