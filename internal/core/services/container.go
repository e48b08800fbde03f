package services

import (
	portsrepo "github.com/stackforge-labs/webapp_suite/internal/core/ports/repositories"
	portssvc "github.com/stackforge-labs/webapp_suite/internal/core/ports/services"
	"github.com/stackforge-labs/webapp_suite/internal/platform/config"
)

// NewServiceContainer wires every service with its dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, notifier portssvc.ResetNotifier) *portssvc.ServiceContainer {
	tokenSvc := NewTokenService(cfg)
	return &portssvc.ServiceContainer{
		Token:    tokenSvc,
		Auth:     NewAuthService(cfg, repos.UserRepo, repos.RefreshTokenRepo, tokenSvc, notifier),
		User:     NewUserService(repos.UserRepo),
		Admin:    NewAdminService(repos.UserRepo, repos.RefreshTokenRepo),
		Customer: NewCustomerService(repos.CustomerRepo),
		Product:  NewProductService(repos.ProductRepo),
		Student:  NewStudentService(repos.StudentRepo),
	}
}
