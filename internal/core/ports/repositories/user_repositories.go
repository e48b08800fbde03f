package repositories

import (
	"context"
	"time"

	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
)

// UserRepository persists user records. Lookup misses return
// apperrors.ErrNotFound; unique-key collisions return
// apperrors.ErrDuplicate.
type UserRepository interface {
	// SaveUser inserts a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by its unique username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmail retrieves a user by its unique email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByResetTokenHash retrieves the user holding a pending
	// reset token, if any.
	FindUserByResetTokenHash(ctx context.Context, tokenHash string) (*domain.User, error)

	// FindUsers retrieves a paginated list of users.
	FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	// UpdateProfile writes the mutable profile fields (full name, email).
	UpdateProfile(ctx context.Context, user domain.User) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error

	// SetResetToken stores a pending reset token hash and expiry,
	// overwriting any prior pending reset.
	SetResetToken(ctx context.Context, userID string, tokenHash string, expiry time.Time) error

	// RedeemResetToken writes the new password hash and clears both
	// reset columns in a single statement.
	RedeemResetToken(ctx context.Context, userID string, passwordHash string) error

	// SetRole changes a user's role.
	SetRole(ctx context.Context, userID string, role domain.Role) error

	// SetActive flips the soft-delete flag.
	SetActive(ctx context.Context, userID string, active bool) error
}
