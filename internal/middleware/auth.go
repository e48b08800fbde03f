package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stackforge-labs/webapp_suite/internal/apperrors"
	portssvc "github.com/stackforge-labs/webapp_suite/internal/core/ports/services"
)

// AuthMiddleware creates a Gin middleware handler that validates the
// bearer access token and stores the resulting claims in the request
// context. Expired and otherwise invalid tokens both yield 401, with
// distinct messages.
func AuthMiddleware(tokenSvc portssvc.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := tokenSvc.ValidateAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		// Store the claims and an enriched logger back into the request
		// context for downstream handlers.
		ctxWithClaims := context.WithValue(c.Request.Context(), claimsKey, *claims)
		enrichedLogger := logger.With(slog.String("username", claims.Subject))
		ctxWithLogger := context.WithValue(ctxWithClaims, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctxWithLogger)

		c.Next()
	}
}
