package repositories

import (
	"context"

	"github.com/gstnote/gstnote_backend/internal/core/domain"
)

// CompanyReader defines read operations for company data.
type CompanyReader interface {
	// FindCompanyByID retrieves a specific company by its ID.
	FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error)

	// FindCompanyByName retrieves a company by its exact name, used by the
	// signup existence probe. Returns apperrors.ErrNotFound when absent.
	FindCompanyByName(ctx context.Context, name string) (*domain.Company, error)
}

// CompanyWriter defines write operations for company data.
type CompanyWriter interface {
	// SaveCompany persists a new company and returns it with its assigned id.
	SaveCompany(ctx context.Context, company domain.Company) (*domain.Company, error)

	// SaveCompanyWithAdmin persists a new company together with its first
	// admin user inside a single database transaction (the signup flow).
	SaveCompanyWithAdmin(ctx context.Context, company domain.Company, admin domain.UserProfile) (*domain.Company, *domain.User, error)

	// UpdateCompany updates a company's descriptive columns.
	UpdateCompany(ctx context.Context, company domain.Company) error
}

// CompanyRepositoryFacade combines all company repository interfaces.
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
