package services

import (
	"context"

	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	"github.com/stackforge-labs/webapp_suite/internal/dto"
)

// AuthSvcFacade orchestrates the session lifecycle: credential
// verification, token issuance/rotation and the password flows. Caller
// identity always arrives as explicit claims; nothing is read from
// ambient state.
type AuthSvcFacade interface {
	// Login verifies credentials, rejects inactive accounts and returns
	// a fresh access token plus a rotated refresh token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new access token.
	// The refresh token itself is rotated; the old one stops working.
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)

	// Logout revokes all refresh tokens of the calling user.
	Logout(ctx context.Context, claims domain.Claims) error

	// ChangePassword verifies the current password, applies the new one
	// and revokes all refresh tokens.
	ChangePassword(ctx context.Context, claims domain.Claims, req dto.ChangePasswordRequest) error

	// ForgotPassword issues a single-use, time-boxed reset token for the
	// account bound to the email and hands it to the notifier. The raw
	// token is returned for non-production surfaces.
	ForgotPassword(ctx context.Context, email string) (string, error)

	// ResetPassword redeems a reset token. The token is cleared
	// atomically with the password write and all refresh tokens are
	// revoked.
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error

	// DeleteAccount soft-deletes the calling user after a password check
	// and revokes all refresh tokens.
	DeleteAccount(ctx context.Context, claims domain.Claims, password string) error
}

// ResetNotifier delivers a freshly issued password-reset token to the
// account owner. Production wires a mail sender here; development logs
// the token.
type ResetNotifier interface {
	NotifyResetToken(ctx context.Context, user *domain.User, token string) error
}
