package services

import (
	"fmt"

	"github.com/stackforge-labs/webapp_suite/internal/apperrors"
	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
)

// Authorize checks the caller's claims against an explicit set of
// acceptable roles. The role set is flat; callers name every role they
// accept rather than relying on any ordering. A deny is terminal and
// surfaces as apperrors.ErrForbidden.
func Authorize(claims domain.Claims, allowed ...domain.Role) error {
	for _, role := range allowed {
		if claims.Role == role {
			return nil
		}
	}
	return fmt.Errorf("role %s is not permitted: %w", claims.Role, apperrors.ErrForbidden)
}
