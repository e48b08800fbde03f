package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stackforge-labs/webapp_suite/internal/apperrors"
	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	"github.com/stackforge-labs/webapp_suite/internal/core/services"
	"github.com/stackforge-labs/webapp_suite/internal/platform/config"
	"github.com/stackforge-labs/webapp_suite/internal/utils"
	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	cfg  *config.Config
	user *domain.User
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-for-token-service",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "webapp-suite-test",
	}
	suite.user = &domain.User{
		UserID:   "user-1",
		Username: "alice",
		Role:     domain.RoleAdmin,
		IsActive: true,
	}
}

func (suite *TokenServiceTestSuite) TestIssueAndValidate_RoundTrip() {
	ctx := context.Background()
	svc := services.NewTokenService(suite.cfg)

	token, expiry, err := svc.IssueAccessToken(ctx, suite.user)
	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.WithinDuration(time.Now().Add(time.Hour), expiry, 5*time.Second)

	claims, err := svc.ValidateAccessToken(ctx, token)
	suite.Require().NoError(err)
	suite.Equal("alice", claims.Subject)
	suite.Equal(domain.RoleAdmin, claims.Role)
	suite.WithinDuration(expiry, claims.ExpiresAt, 2*time.Second)
}

func (suite *TokenServiceTestSuite) TestValidate_Expired() {
	ctx := context.Background()
	expiredCfg := &config.Config{
		JWTSecret:         suite.cfg.JWTSecret,
		JWTExpiryDuration: -time.Minute,
		JWTIssuer:         suite.cfg.JWTIssuer,
	}

	token, _, err := services.NewTokenService(expiredCfg).IssueAccessToken(ctx, suite.user)
	suite.Require().NoError(err)

	_, err = services.NewTokenService(suite.cfg).ValidateAccessToken(ctx, token)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTokenExpired)
}

func (suite *TokenServiceTestSuite) TestValidate_WrongSecret() {
	ctx := context.Background()

	token, err := utils.GenerateJWT("alice", "ADMIN", "a-different-secret", time.Hour, "webapp-suite-test")
	suite.Require().NoError(err)

	_, err = services.NewTokenService(suite.cfg).ValidateAccessToken(ctx, token)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTokenInvalid)
}

func (suite *TokenServiceTestSuite) TestValidate_Malformed() {
	ctx := context.Background()

	_, err := services.NewTokenService(suite.cfg).ValidateAccessToken(ctx, "not.a.jwt")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTokenInvalid)
}

func (suite *TokenServiceTestSuite) TestValidate_UnknownRole() {
	ctx := context.Background()

	token, err := utils.GenerateJWT("alice", "SUPERUSER", suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	_, err = services.NewTokenService(suite.cfg).ValidateAccessToken(ctx, token)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTokenInvalid)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
