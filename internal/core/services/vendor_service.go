package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gstnote/gstnote_backend/internal/apperrors"
	"github.com/gstnote/gstnote_backend/internal/core/domain"
	portsrepo "github.com/gstnote/gstnote_backend/internal/core/ports/repositories"
	portssvc "github.com/gstnote/gstnote_backend/internal/core/ports/services"
	"github.com/gstnote/gstnote_backend/internal/dto"
	"github.com/gstnote/gstnote_backend/internal/middleware"
)

type VendorService struct {
	vendorRepo portsrepo.VendorRepositoryFacade
}

func NewVendorService(vendorRepo portsrepo.VendorRepositoryFacade) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

// Ensure VendorService implements the portssvc.VendorSvcFacade interface
var _ portssvc.VendorSvcFacade = (*VendorService)(nil)

func (s *VendorService) CreateVendor(ctx context.Context, companyID int64, req dto.CreateVendorRequest) (*domain.Vendor, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	profile := domain.VendorProfile{
		VendorName:    req.VendorName,
		Address:       req.Address,
		GSTIN:         req.GSTIN,
		Phone:         req.Phone,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
	}
	vendor, err := s.vendorRepo.SaveVendor(ctx, companyID, profile)
	if err != nil {
		logger.Error("Failed to create vendor", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	logger.Info("Vendor created", slog.Int64("vendor_id", vendor.VendorID), slog.String("vendor_code", vendor.Profile.VendorCode))
	return vendor, nil
}

func (s *VendorService) ListVendors(ctx context.Context, companyID int64) ([]domain.Vendor, error) {
	vendors, err := s.vendorRepo.FindVendorsByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return vendors, nil
}

func (s *VendorService) GetVendorByID(ctx context.Context, companyID, vendorID int64) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, companyID, vendorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	return vendor, nil
}

// UpdateVendor applies a partial update. The stored vendor code is always
// re-attached: the code is allocated once at creation and survives every
// update no matter what the caller sends.
func (s *VendorService) UpdateVendor(ctx context.Context, companyID, vendorID int64, req dto.UpdateVendorRequest) (*domain.Vendor, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	vendor, err := s.vendorRepo.FindVendorByID(ctx, companyID, vendorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load vendor for update: %w", err)
	}

	if req.VendorName != nil {
		vendor.Profile.VendorName = *req.VendorName
	}
	if req.Address != nil {
		vendor.Profile.Address = *req.Address
	}
	if req.GSTIN != nil {
		vendor.Profile.GSTIN = *req.GSTIN
	}
	if req.Phone != nil {
		vendor.Profile.Phone = *req.Phone
	}
	if req.ContactPerson != nil {
		vendor.Profile.ContactPerson = *req.ContactPerson
	}
	if req.Email != nil {
		vendor.Profile.Email = *req.Email
	}

	if err := s.vendorRepo.UpdateVendor(ctx, *vendor); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		logger.Error("Failed to update vendor", slog.Int64("vendor_id", vendorID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update vendor: %w", err)
	}

	logger.Info("Vendor updated", slog.Int64("vendor_id", vendorID), slog.Int64("company_id", companyID))
	return vendor, nil
}

func (s *VendorService) DeleteVendor(ctx context.Context, companyID, vendorID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.vendorRepo.DeleteVendor(ctx, companyID, vendorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete vendor: %w", err)
	}

	logger.Info("Vendor deleted", slog.Int64("vendor_id", vendorID), slog.Int64("company_id", companyID))
	return nil
}
