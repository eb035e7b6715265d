package services

import (
	portsrepo "github.com/gstnote/gstnote_backend/internal/core/ports/repositories"
	portssvc "github.com/gstnote/gstnote_backend/internal/core/ports/services"
	"github.com/gstnote/gstnote_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(cfg, repos.UserRepo, repos.CompanyRepo)
	container.Company = NewCompanyService(repos.CompanyRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Vendor = NewVendorService(repos.VendorRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.VendorRepo, repos.CompanyRepo)
	container.Reporting = NewReportingService(repos.TransactionRepo)

	return container
}
