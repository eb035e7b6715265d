package repositories

import (
	"context"

	"github.com/gstnote/gstnote_backend/internal/core/domain"
)

// VendorReader defines read operations for vendor data.
type VendorReader interface {
	// FindVendorByID retrieves a vendor by row id within a company.
	FindVendorByID(ctx context.Context, companyID, vendorID int64) (*domain.Vendor, error)

	// FindVendorsByCompany retrieves all vendors of a company, newest first.
	FindVendorsByCompany(ctx context.Context, companyID int64) ([]domain.Vendor, error)
}

// VendorWriter defines write operations for vendor data.
type VendorWriter interface {
	// SaveVendor persists a new vendor, allocating the next VDR code in the
	// company's scope atomically with the insert. The allocated code is
	// stored inside the profile document.
	SaveVendor(ctx context.Context, companyID int64, profile domain.VendorProfile) (*domain.Vendor, error)

	// UpdateVendor replaces a vendor's profile document.
	UpdateVendor(ctx context.Context, vendor domain.Vendor) error

	// DeleteVendor removes a vendor by row id within a company.
	DeleteVendor(ctx context.Context, companyID, vendorID int64) error
}

// VendorRepositoryFacade combines all vendor repository interfaces.
type VendorRepositoryFacade interface {
	VendorReader
	VendorWriter
}
