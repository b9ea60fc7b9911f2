package services

import (
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/validation"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	v := validation.New()

	return &portssvc.ServiceContainer{
		Account: NewAccountServiceImpl(repos.AccountRepo, WithValidator(v)),
	}
}
