package services

import (
	"context"

	"github.com/gstnote/gstnote_backend/internal/core/domain"
	"github.com/gstnote/gstnote_backend/internal/dto"
)

// VendorSvcFacade defines company-scoped vendor management.
type VendorSvcFacade interface {
	// CreateVendor creates a vendor, auto-allocating its VDR code.
	CreateVendor(ctx context.Context, companyID int64, req dto.CreateVendorRequest) (*domain.Vendor, error)

	// ListVendors retrieves all vendors of the company.
	ListVendors(ctx context.Context, companyID int64) ([]domain.Vendor, error)

	// GetVendorByID retrieves a vendor within the company.
	GetVendorByID(ctx context.Context, companyID, vendorID int64) (*domain.Vendor, error)

	// UpdateVendor applies a partial update, always re-attaching the prior
	// vendor code.
	UpdateVendor(ctx context.Context, companyID, vendorID int64, req dto.UpdateVendorRequest) (*domain.Vendor, error)

	// DeleteVendor removes a vendor within the company.
	DeleteVendor(ctx context.Context, companyID, vendorID int64) error
}
