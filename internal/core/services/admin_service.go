package services

import (
	"context"
	"fmt"

	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	portsrepo "github.com/stackforge-labs/webapp_suite/internal/core/ports/repositories"
	portssvc "github.com/stackforge-labs/webapp_suite/internal/core/ports/services"
)

// adminService performs privileged user management. Every method gates
// on RoleAdmin before touching the target record.
type adminService struct {
	userRepo    portsrepo.UserRepository
	refreshRepo portsrepo.RefreshTokenRepository
}

// NewAdminService creates a new adminService.
func NewAdminService(userRepo portsrepo.UserRepository, refreshRepo portsrepo.RefreshTokenRepository) portssvc.AdminSvcFacade {
	return &adminService{userRepo: userRepo, refreshRepo: refreshRepo}
}

func (s *adminService) ListUsers(ctx context.Context, claims domain.Claims, limit, offset int) ([]domain.User, error) {
	if err := Authorize(claims, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.userRepo.FindUsers(ctx, limit, offset)
}

func (s *adminService) SetUserRole(ctx context.Context, claims domain.Claims, userID string, role domain.Role) (*domain.User, error) {
	if err := Authorize(claims, domain.RoleAdmin); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role == role {
		return user, nil
	}

	if err := s.userRepo.SetRole(ctx, userID, role); err != nil {
		return nil, err
	}

	// Access tokens carry the old role until they expire; killing the
	// refresh token caps how long that window lasts.
	if err := s.refreshRepo.DeleteByUserID(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh tokens after role change: %w", err)
	}

	user.Role = role
	return user, nil
}

func (s *adminService) ToggleUserStatus(ctx context.Context, claims domain.Claims, userID string) (*domain.User, error) {
	if err := Authorize(claims, domain.RoleAdmin); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	newActive := !user.IsActive
	if err := s.userRepo.SetActive(ctx, userID, newActive); err != nil {
		return nil, err
	}

	if !newActive {
		if err := s.refreshRepo.DeleteByUserID(ctx, userID); err != nil {
			return nil, fmt.Errorf("failed to revoke refresh tokens after deactivation: %w", err)
		}
	}

	user.IsActive = newActive
	return user, nil
}
