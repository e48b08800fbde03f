package services_test

import (
	"testing"

	"github.com/stackforge-labs/webapp_suite/internal/apperrors"
	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	"github.com/stackforge-labs/webapp_suite/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	admin := domain.Claims{Subject: "root", Role: domain.RoleAdmin}
	user := domain.Claims{Subject: "bob", Role: domain.RoleUser}

	t.Run("allows matching role", func(t *testing.T) {
		assert.NoError(t, services.Authorize(admin, domain.RoleAdmin))
		assert.NoError(t, services.Authorize(user, domain.RoleUser))
	})

	t.Run("allows any of multiple roles", func(t *testing.T) {
		assert.NoError(t, services.Authorize(user, domain.RoleAdmin, domain.RoleUser))
	})

	t.Run("denies missing role", func(t *testing.T) {
		err := services.Authorize(user, domain.RoleAdmin)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("denies empty allowed set", func(t *testing.T) {
		err := services.Authorize(admin)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}
