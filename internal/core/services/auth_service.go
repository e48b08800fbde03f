package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stackforge-labs/webapp_suite/internal/apperrors"
	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	portsrepo "github.com/stackforge-labs/webapp_suite/internal/core/ports/repositories"
	portssvc "github.com/stackforge-labs/webapp_suite/internal/core/ports/services"
	"github.com/stackforge-labs/webapp_suite/internal/dto"
	"github.com/stackforge-labs/webapp_suite/internal/platform/config"
	"github.com/stackforge-labs/webapp_suite/internal/utils"
)

const refreshTokenBytes = 32 // 256 bits of entropy, hex encoded
const resetTokenBytes = 32

// authService implements the session lifecycle. All caller identity
// arrives as explicit claims; nothing is read from ambient state.
type authService struct {
	cfg         *config.Config
	userRepo    portsrepo.UserRepository
	refreshRepo portsrepo.RefreshTokenRepository
	tokenSvc    portssvc.TokenSvcFacade
	notifier    portssvc.ResetNotifier
}

// NewAuthService creates a new authService.
func NewAuthService(
	cfg *config.Config,
	userRepo portsrepo.UserRepository,
	refreshRepo portsrepo.RefreshTokenRepository,
	tokenSvc portssvc.TokenSvcFacade,
	notifier portssvc.ResetNotifier,
) portssvc.AuthSvcFacade {
	return &authService{
		cfg:         cfg,
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		tokenSvc:    tokenSvc,
		notifier:    notifier,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("failed to load user for login: %w", err)
	}

	// Inactive accounts fail exactly like a wrong password so that the
	// response does not reveal whether the account exists or its state.
	if !user.IsActive || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrAuthenticationFailed
	}

	return s.issueSession(ctx, user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	stored, err := s.refreshRepo.FindByTokenHash(ctx, utils.HashOpaqueToken(refreshToken))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("refresh token unknown: %w", apperrors.ErrTokenInvalid)
		}
		return nil, fmt.Errorf("failed to resolve refresh token: %w", err)
	}
	if stored.Expired(time.Now()) {
		return nil, fmt.Errorf("refresh token past expiry: %w", apperrors.ErrTokenExpired)
	}

	user, err := s.userRepo.FindUserByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("refresh token owner missing: %w", apperrors.ErrTokenInvalid)
		}
		return nil, fmt.Errorf("failed to load user for refresh: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrAuthenticationFailed
	}

	// The access token is bound to the user's current username and role,
	// and the refresh token rotates: the presented one stops working the
	// moment the replacement is stored.
	return s.issueSession(ctx, user)
}

// issueSession mints an access token and rotates the refresh token.
// Replace semantics guarantee at most one live refresh token per user.
func (s *authService) issueSession(ctx context.Context, user *domain.User) (*dto.LoginResponse, error) {
	accessToken, _, err := s.tokenSvc.IssueAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	rawRefresh, err := utils.GenerateSecureRandomString(refreshTokenBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	expiresAt := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.refreshRepo.Replace(ctx, user.UserID, utils.HashOpaqueToken(rawRefresh), expiresAt); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		TokenType:    "Bearer",
		Username:     user.Username,
		Email:        user.Email,
		Role:         string(user.Role),
	}, nil
}

func (s *authService) Logout(ctx context.Context, claims domain.Claims) error {
	user, err := s.userRepo.FindUserByUsername(ctx, claims.Subject)
	if err != nil {
		return fmt.Errorf("failed to load user for logout: %w", err)
	}
	if err := s.refreshRepo.DeleteByUserID(ctx, user.UserID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, claims domain.Claims, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindUserByUsername(ctx, claims.Subject)
	if err != nil {
		return fmt.Errorf("failed to load user for password change: %w", err)
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return fmt.Errorf("current password is incorrect: %w", apperrors.ErrAuthenticationFailed)
	}
	if req.NewPassword != req.ConfirmPassword {
		return fmt.Errorf("new password and confirm password do not match: %w", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.UserID, hash); err != nil {
		return err
	}

	// Outstanding sessions die with the old password.
	if err := s.refreshRepo.DeleteByUserID(ctx, user.UserID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens after password change: %w", err)
	}
	return nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("email not found: %w", apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("failed to load user for password reset: %w", err)
	}

	token, err := utils.GenerateSecureRandomString(resetTokenBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	// Overwrites any prior pending reset; only one token is live at a time.
	expiry := time.Now().Add(s.cfg.ResetTokenExpiryDuration)
	if err := s.userRepo.SetResetToken(ctx, user.UserID, utils.HashOpaqueToken(token), expiry); err != nil {
		return "", err
	}

	if err := s.notifier.NotifyResetToken(ctx, user, token); err != nil {
		return "", fmt.Errorf("failed to deliver reset token: %w", err)
	}
	return token, nil
}

func (s *authService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	user, err := s.userRepo.FindUserByResetTokenHash(ctx, utils.HashOpaqueToken(req.Token))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("reset token unknown: %w", apperrors.ErrTokenInvalid)
		}
		return fmt.Errorf("failed to resolve reset token: %w", err)
	}
	if user.ResetTokenExpiry == nil {
		return fmt.Errorf("reset token has no expiry: %w", apperrors.ErrTokenInvalid)
	}
	if time.Now().After(*user.ResetTokenExpiry) {
		return fmt.Errorf("reset token past expiry: %w", apperrors.ErrTokenExpired)
	}
	if req.NewPassword != req.ConfirmPassword {
		return fmt.Errorf("passwords do not match: %w", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	// Single statement: the token clears with the password write, so a
	// redeemed token can never be presented again.
	if err := s.userRepo.RedeemResetToken(ctx, user.UserID, hash); err != nil {
		return err
	}

	if err := s.refreshRepo.DeleteByUserID(ctx, user.UserID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens after reset: %w", err)
	}
	return nil
}

func (s *authService) DeleteAccount(ctx context.Context, claims domain.Claims, password string) error {
	user, err := s.userRepo.FindUserByUsername(ctx, claims.Subject)
	if err != nil {
		return fmt.Errorf("failed to load user for account deletion: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return fmt.Errorf("password is incorrect: %w", apperrors.ErrAuthenticationFailed)
	}

	if err := s.userRepo.SetActive(ctx, user.UserID, false); err != nil {
		return err
	}

	// Without this a deactivated account could keep minting access
	// tokens until its refresh token ran out.
	if err := s.refreshRepo.DeleteByUserID(ctx, user.UserID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens after deactivation: %w", err)
	}
	return nil
}
