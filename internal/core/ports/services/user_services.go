package services

import (
	"context"

	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	"github.com/stackforge-labs/webapp_suite/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// Register creates a new USER-role account after uniqueness checks
	// on username and email.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// UpdateProfile updates the caller's mutable profile fields. An
	// email change re-checks uniqueness before committing.
	UpdateProfile(ctx context.Context, claims domain.Claims, req dto.UpdateProfileRequest) (*domain.User, error)
}

// UserSvcFacade combines the user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
