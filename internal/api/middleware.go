package api

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const ownerKey = "owner_id"

// RequireAuth accepts an HS256 bearer token whose subject is the owner's
// UUID and stores that UUID on the gin context.
func RequireAuth(secret []byte) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" || len(secret) == 0 {
			abortUnauthorized(c)
			return
		}

		claims := &jwt.RegisteredClaims{}
		if _, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
			return secret, nil
		}); err != nil {
			abortUnauthorized(c)
			return
		}

		ownerID, err := uuid.Parse(claims.Subject)
		if err != nil || ownerID == uuid.Nil {
			abortUnauthorized(c)
			return
		}

		c.Set(ownerKey, ownerID)
		c.Next()
	}
}

// RequireCronSecret guards scheduler endpoints with a shared bearer secret.
// With no secret configured every request is rejected.
func RequireCronSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if secret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			abortUnauthorized(c)
			return
		}
		c.Next()
	}
}

func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if id, ok := c.Get(ownerKey); ok {
			fields = append(fields, "owner_id", id)
		}

		switch {
		case status >= 500:
			logger.Error("http request", fields...)
		case status >= 400:
			logger.Warn("http request", fields...)
		default:
			logger.Info("http request", fields...)
		}
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}

func ownerID(c *gin.Context) uuid.UUID {
	id, _ := c.Get(ownerKey)
	owner, _ := id.(uuid.UUID)
	return owner
}
