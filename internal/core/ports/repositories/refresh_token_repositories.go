package repositories

import (
	"context"
	"time"

	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
)

// RefreshTokenRepository persists refresh tokens, one row per user,
// looked up by SHA-256 hash.
type RefreshTokenRepository interface {
	// Replace atomically swaps the user's refresh token for a new one.
	// Concurrent calls for the same user leave exactly one row.
	Replace(ctx context.Context, userID string, tokenHash string, expiresAt time.Time) error

	// FindByTokenHash retrieves a token record. Unknown hashes return
	// apperrors.ErrNotFound. Expiry is NOT checked here; callers decide.
	FindByTokenHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)

	// DeleteByUserID removes all tokens owned by the user.
	DeleteByUserID(ctx context.Context, userID string) error
}
