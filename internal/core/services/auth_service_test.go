package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stackforge-labs/webapp_suite/internal/apperrors"
	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	portssvc "github.com/stackforge-labs/webapp_suite/internal/core/ports/services"
	"github.com/stackforge-labs/webapp_suite/internal/core/services"
	"github.com/stackforge-labs/webapp_suite/internal/dto"
	"github.com/stackforge-labs/webapp_suite/internal/platform/config"
	"github.com/stackforge-labs/webapp_suite/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	cfg             *config.Config
	mockUserRepo    *MockUserRepository
	mockRefreshRepo *MockRefreshTokenRepository
	mockNotifier    *MockResetNotifier
	service         portssvc.AuthSvcFacade

	password     string
	passwordHash string
}

func (suite *AuthServiceTestSuite) SetupSuite() {
	// bcrypt is slow; hash once for the whole suite.
	suite.password = "correct-horse-battery"
	hash, err := utils.HashPassword(suite.password)
	suite.Require().NoError(err)
	suite.passwordHash = hash
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		JWTSecret:                  "test-secret-key-for-auth-service",
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "webapp-suite-test",
		RefreshTokenExpiryDuration: 7 * 24 * time.Hour,
		ResetTokenExpiryDuration:   time.Hour,
	}
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockRefreshRepo = new(MockRefreshTokenRepository)
	suite.mockNotifier = new(MockResetNotifier)
	suite.service = services.NewAuthService(
		suite.cfg,
		suite.mockUserRepo,
		suite.mockRefreshRepo,
		services.NewTokenService(suite.cfg),
		suite.mockNotifier,
	)
}

func (suite *AuthServiceTestSuite) activeUser() *domain.User {
	return &domain.User{
		UserID:       "user-1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: suite.passwordHash,
		FullName:     "Alice Tester",
		Role:         domain.RoleUser,
		IsActive:     true,
	}
}

// --- Login ---

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	user := suite.activeUser()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(user, nil).Once()
	var storedHash string
	suite.mockRefreshRepo.On("Replace", ctx, "user-1", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Username: "alice", Password: suite.password})

	suite.Require().NoError(err)
	suite.NotEmpty(resp.AccessToken)
	suite.NotEmpty(resp.RefreshToken)
	suite.Equal("Bearer", resp.TokenType)
	suite.Equal("alice", resp.Username)
	suite.Equal("USER", resp.Role)

	// The raw refresh token is never stored, only its hash.
	suite.NotEqual(resp.RefreshToken, storedHash)
	suite.Equal(utils.HashOpaqueToken(resp.RefreshToken), storedHash)

	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockRefreshRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(suite.activeUser(), nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Username: "alice", Password: "wrong"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)
	suite.mockRefreshRepo.AssertNotCalled(suite.T(), "Replace", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUser() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Username: "ghost", Password: "whatever"})

	suite.Require().Error(err)
	suite.Nil(resp)
	// Unknown user is indistinguishable from a bad password.
	suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)
}

func (suite *AuthServiceTestSuite) TestLogin_InactiveUser() {
	ctx := context.Background()
	user := suite.activeUser()
	user.IsActive = false
	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(user, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Username: "alice", Password: suite.password})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)
}

// --- Refresh ---

func (suite *AuthServiceTestSuite) TestRefresh_RotatesToken() {
	ctx := context.Background()
	user := suite.activeUser()
	rawToken := "aaaabbbbccccdddd"
	stored := &domain.RefreshToken{
		TokenHash: utils.HashOpaqueToken(rawToken),
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	suite.mockRefreshRepo.On("FindByTokenHash", ctx, stored.TokenHash).Return(stored, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, "user-1").Return(user, nil).Once()
	var newHash string
	suite.mockRefreshRepo.On("Replace", ctx, "user-1", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { newHash = args.String(2) }).
		Return(nil).Once()

	resp, err := suite.service.Refresh(ctx, rawToken)

	suite.Require().NoError(err)
	suite.NotEmpty(resp.AccessToken)
	// The replacement must differ from the token that was presented.
	suite.NotEqual(rawToken, resp.RefreshToken)
	suite.NotEqual(stored.TokenHash, newHash)
	suite.mockRefreshRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRefresh_UnknownToken() {
	ctx := context.Background()
	suite.mockRefreshRepo.On("FindByTokenHash", ctx, mock.AnythingOfType("string")).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.Refresh(ctx, "never-issued")

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrTokenInvalid)
}

func (suite *AuthServiceTestSuite) TestRefresh_ExpiredToken() {
	ctx := context.Background()
	rawToken := "stale-token"
	stored := &domain.RefreshToken{
		TokenHash: utils.HashOpaqueToken(rawToken),
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	suite.mockRefreshRepo.On("FindByTokenHash", ctx, stored.TokenHash).Return(stored, nil).Once()

	resp, err := suite.service.Refresh(ctx, rawToken)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrTokenExpired)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRefresh_InactiveUser() {
	ctx := context.Background()
	user := suite.activeUser()
	user.IsActive = false
	rawToken := "token-of-deactivated-user"
	stored := &domain.RefreshToken{
		TokenHash: utils.HashOpaqueToken(rawToken),
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	suite.mockRefreshRepo.On("FindByTokenHash", ctx, stored.TokenHash).Return(stored, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, "user-1").Return(user, nil).Once()

	resp, err := suite.service.Refresh(ctx, rawToken)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)
}

// --- ChangePassword ---

func (suite *AuthServiceTestSuite) TestChangePassword_Success() {
	ctx := context.Background()
	user := suite.activeUser()
	claims := domain.Claims{Subject: "alice", Role: domain.RoleUser}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(user, nil).Once()
	suite.mockUserRepo.On("UpdatePassword", ctx, "user-1", mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("new-password-123", hash)
	})).Return(nil).Once()
	suite.mockRefreshRepo.On("DeleteByUserID", ctx, "user-1").Return(nil).Once()

	err := suite.service.ChangePassword(ctx, claims, dto.ChangePasswordRequest{
		CurrentPassword: suite.password,
		NewPassword:     "new-password-123",
		ConfirmPassword: "new-password-123",
	})

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockRefreshRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestChangePassword_WrongCurrent() {
	ctx := context.Background()
	claims := domain.Claims{Subject: "alice", Role: domain.RoleUser}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(suite.activeUser(), nil).Once()

	err := suite.service.ChangePassword(ctx, claims, dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-password-123",
		ConfirmPassword: "new-password-123",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestChangePassword_ConfirmMismatch() {
	ctx := context.Background()
	claims := domain.Claims{Subject: "alice", Role: domain.RoleUser}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(suite.activeUser(), nil).Once()

	err := suite.service.ChangePassword(ctx, claims, dto.ChangePasswordRequest{
		CurrentPassword: suite.password,
		NewPassword:     "new-password-123",
		ConfirmPassword: "something-else",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

// --- ForgotPassword / ResetPassword ---

func (suite *AuthServiceTestSuite) TestForgotPassword_IssuesToken() {
	ctx := context.Background()
	user := suite.activeUser()

	var storedHash string
	suite.mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(user, nil).Once()
	suite.mockUserRepo.On("SetResetToken", ctx, "user-1", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(nil).Once()
	suite.mockNotifier.On("NotifyResetToken", ctx, user, mock.AnythingOfType("string")).Return(nil).Once()

	token, err := suite.service.ForgotPassword(ctx, "alice@example.com")

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.Equal(utils.HashOpaqueToken(token), storedHash)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestForgotPassword_UnknownEmail() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	token, err := suite.service.ForgotPassword(ctx, "ghost@example.com")

	suite.Require().Error(err)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AuthServiceTestSuite) TestResetPassword_Success() {
	ctx := context.Background()
	rawToken := "reset-token-raw"
	expiry := time.Now().Add(30 * time.Minute)
	user := suite.activeUser()
	hash := utils.HashOpaqueToken(rawToken)
	user.ResetTokenHash = &hash
	user.ResetTokenExpiry = &expiry

	suite.mockUserRepo.On("FindUserByResetTokenHash", ctx, hash).Return(user, nil).Once()
	suite.mockUserRepo.On("RedeemResetToken", ctx, "user-1", mock.MatchedBy(func(h string) bool {
		return utils.CheckPasswordHash("brand-new-password", h)
	})).Return(nil).Once()
	suite.mockRefreshRepo.On("DeleteByUserID", ctx, "user-1").Return(nil).Once()

	err := suite.service.ResetPassword(ctx, dto.ResetPasswordRequest{
		Token:           rawToken,
		NewPassword:     "brand-new-password",
		ConfirmPassword: "brand-new-password",
	})

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockRefreshRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestResetPassword_UnknownToken() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByResetTokenHash", ctx, mock.AnythingOfType("string")).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.ResetPassword(ctx, dto.ResetPasswordRequest{
		Token:           "redeemed-or-bogus",
		NewPassword:     "brand-new-password",
		ConfirmPassword: "brand-new-password",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTokenInvalid)
}

func (suite *AuthServiceTestSuite) TestResetPassword_ExpiredToken() {
	ctx := context.Background()
	rawToken := "expired-reset-token"
	expiry := time.Now().Add(-time.Minute)
	user := suite.activeUser()
	hash := utils.HashOpaqueToken(rawToken)
	user.ResetTokenHash = &hash
	user.ResetTokenExpiry = &expiry

	suite.mockUserRepo.On("FindUserByResetTokenHash", ctx, hash).Return(user, nil).Once()

	err := suite.service.ResetPassword(ctx, dto.ResetPasswordRequest{
		Token:           rawToken,
		NewPassword:     "brand-new-password",
		ConfirmPassword: "brand-new-password",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTokenExpired)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "RedeemResetToken", mock.Anything, mock.Anything, mock.Anything)
}

// --- Logout / DeleteAccount ---

func (suite *AuthServiceTestSuite) TestLogout_RevokesRefreshTokens() {
	ctx := context.Background()
	claims := domain.Claims{Subject: "alice", Role: domain.RoleUser}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(suite.activeUser(), nil).Once()
	suite.mockRefreshRepo.On("DeleteByUserID", ctx, "user-1").Return(nil).Once()

	err := suite.service.Logout(ctx, claims)

	suite.Require().NoError(err)
	suite.mockRefreshRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()
	claims := domain.Claims{Subject: "alice", Role: domain.RoleUser}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(suite.activeUser(), nil).Once()
	suite.mockUserRepo.On("SetActive", ctx, "user-1", false).Return(nil).Once()
	suite.mockRefreshRepo.On("DeleteByUserID", ctx, "user-1").Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, claims, suite.password)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockRefreshRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestDeleteAccount_WrongPassword() {
	ctx := context.Background()
	claims := domain.Claims{Subject: "alice", Role: domain.RoleUser}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(suite.activeUser(), nil).Once()

	err := suite.service.DeleteAccount(ctx, claims, "wrong")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SetActive", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
