package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	"github.com/stackforge-labs/webapp_suite/internal/core/services"
)

// RequireRoles creates a Gin middleware handler that rejects callers
// whose role is not in the allowed set. It must run after
// AuthMiddleware; a missing claim set aborts with 401 rather than 403.
func RequireRoles(allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaimsFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if err := services.Authorize(claims, allowed...); err != nil {
			GetLoggerFromCtx(c.Request.Context()).Warn("Access denied", "role", string(claims.Role))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}
