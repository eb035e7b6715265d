package services

import (
	"context"

	"github.com/gstnote/gstnote_backend/internal/core/domain"
	"github.com/gstnote/gstnote_backend/internal/dto"
)

// CompanySvcFacade defines company operations. Reads and updates are always
// scoped to the caller's own company.
type CompanySvcFacade interface {
	// CreateCompany registers a new tenant (public, the signup flow).
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error)

	// GetCompany retrieves the caller's company.
	GetCompany(ctx context.Context, companyID int64) (*domain.Company, error)

	// UpdateCompany applies a partial update to the caller's company.
	UpdateCompany(ctx context.Context, companyID int64, req dto.UpdateCompanyRequest) (*domain.Company, error)

	// CompanyNameExists probes whether a company name is taken (signup).
	CompanyNameExists(ctx context.Context, name string) (bool, int64, error)
}
