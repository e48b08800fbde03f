package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
)

// claimsKey is the key used to store the authenticated caller's claims.
const claimsKey = contextKey("claims")

// GetClaimsFromContext retrieves the authenticated caller's claims from
// the Gin context. It returns the claims and a boolean indicating if
// they were found.
func GetClaimsFromContext(c *gin.Context) (domain.Claims, bool) {
	claimsVal := c.Request.Context().Value(claimsKey)
	if claimsVal == nil {
		return domain.Claims{}, false
	}

	claims, ok := claimsVal.(domain.Claims)
	if !ok {
		// Should not happen if the auth middleware sets it correctly.
		return domain.Claims{}, false
	}
	return claims, true
}
