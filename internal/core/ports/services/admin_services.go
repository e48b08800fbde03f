package services

import (
	"context"

	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
)

// AdminSvcFacade groups the privileged user-management operations.
// Every method authorizes the caller's claims against RoleAdmin before
// touching the target record.
type AdminSvcFacade interface {
	// ListUsers retrieves a paginated list of all users.
	ListUsers(ctx context.Context, claims domain.Claims, limit, offset int) ([]domain.User, error)

	// SetUserRole changes the target user's role.
	SetUserRole(ctx context.Context, claims domain.Claims, userID string, role domain.Role) (*domain.User, error)

	// ToggleUserStatus flips the target user's active flag. Deactivation
	// also revokes the user's refresh tokens.
	ToggleUserStatus(ctx context.Context, claims domain.Claims, userID string) (*domain.User, error)
}
