package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stackforge-labs/webapp_suite/internal/apperrors"
	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	portssvc "github.com/stackforge-labs/webapp_suite/internal/core/ports/services"
	"github.com/stackforge-labs/webapp_suite/internal/platform/config"
	"github.com/stackforge-labs/webapp_suite/internal/utils"
)

// tokenService implements TokenSvcFacade. Access tokens are short-lived
// and unrevocable; revocation happens indirectly by rotating the refresh
// token, which is the only way to mint new access tokens once the
// current one expires.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) IssueAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.Username, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessToken, expiryTime, nil
}

func (s *tokenService) ValidateAccessToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	parsed, err := utils.ParseAndValidateJWT(tokenString, s.cfg.JWTSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		// Malformed tokens and bad signatures collapse to one failure;
		// the distinction is of no use to callers.
		return nil, fmt.Errorf("access token rejected: %w", apperrors.ErrTokenInvalid)
	}

	role := domain.Role(parsed.Role)
	if parsed.Subject == "" || !role.IsValid() {
		return nil, fmt.Errorf("access token claims incomplete: %w", apperrors.ErrTokenInvalid)
	}

	claims := &domain.Claims{
		Subject: parsed.Subject,
		Role:    role,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time
	}
	return claims, nil
}
