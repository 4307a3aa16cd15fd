package services

import (
	portsrepo "github.com/SscSPs/user_account_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/user_account_app/internal/core/ports/services"
	"github.com/SscSPs/user_account_app/internal/platform/config"
)

// NewServiceContainer wires the concrete services behind their facades.
func NewServiceContainer(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:  NewUserService(userRepo, cfg.BcryptCost),
		Token: NewTokenService(cfg),
	}
}
