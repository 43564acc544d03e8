package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/jwt"
	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	authHeaderName      = "Authorization"
	RequestIDHeaderName = "X-Request-ID"

	IdentityKey  = "identity"
	RequestIDKey = "request_id"
)

func NewAuthMiddleware(tokenParser jwt.TokenParser, secret string) gin.HandlerFunc {
	secretKey := []byte(secret)

	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Errors: "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Errors: "invalid auth header"})
			return
		}

		claims, err := tokenParser.ParseToken(secretKey, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Errors: "invalid token"})
			return
		}

		c.Set(IdentityKey, domain.UserIdentity{ID: claims.UserID, Username: claims.Username})
		c.Next()
	}
}

func identityFromContext(c *gin.Context) domain.UserIdentity {
	identity, _ := c.Get(IdentityKey)
	userIdentity, _ := identity.(domain.UserIdentity)

	return userIdentity
}

// NewRequestIDMiddleware keeps a caller supplied X-Request-ID and generates one otherwise.
func NewRequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeaderName)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeaderName, requestID)
		c.Next()
	}
}

func NewAccessLogMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("request_id", c.GetString(RequestIDKey)),
		)
	}
}
