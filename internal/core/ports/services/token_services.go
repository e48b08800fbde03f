package services

import (
	"context"
	"time"

	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
)

// TokenSvcFacade issues and validates signed access tokens. Validation
// is a pure cryptographic check and never touches storage, so it can run
// on any number of parallel workers.
type TokenSvcFacade interface {
	// IssueAccessToken signs a short-lived access token carrying the
	// user's username and role. Returns the token and its expiry.
	IssueAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAccessToken verifies signature and expiry and returns the
	// embedded claims. Failures: apperrors.ErrTokenExpired for expired
	// tokens, apperrors.ErrTokenInvalid for anything else.
	ValidateAccessToken(ctx context.Context, tokenString string) (*domain.Claims, error)
}
