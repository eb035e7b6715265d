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

type CompanyService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
}

func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// Ensure CompanyService implements the portssvc.CompanySvcFacade interface
var _ portssvc.CompanySvcFacade = (*CompanyService)(nil)

func (s *CompanyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	company := domain.Company{
		CompanyName:   req.CompanyName,
		Address:       req.Address,
		GSTIN:         req.GSTIN,
		Email:         req.Email,
		Phone:         req.Phone,
		ContactPerson: req.ContactPerson,
	}
	saved, err := s.companyRepo.SaveCompany(ctx, company)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		logger.Error("Failed to create company", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	logger.Info("Company created", slog.Int64("company_id", saved.CompanyID))
	return saved, nil
}

func (s *CompanyService) GetCompany(ctx context.Context, companyID int64) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

// UpdateCompany applies a partial update: only the fields present in the
// request change, the rest keep their stored values.
func (s *CompanyService) UpdateCompany(ctx context.Context, companyID int64, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load company for update: %w", err)
	}

	if req.CompanyName != nil {
		company.CompanyName = *req.CompanyName
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if req.GSTIN != nil {
		company.GSTIN = *req.GSTIN
	}
	if req.Email != nil {
		company.Email = *req.Email
	}
	if req.Phone != nil {
		company.Phone = *req.Phone
	}
	if req.ContactPerson != nil {
		company.ContactPerson = *req.ContactPerson
	}

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		logger.Error("Failed to update company", slog.Int64("company_id", companyID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	logger.Info("Company updated", slog.Int64("company_id", companyID))
	return company, nil
}

// CompanyNameExists probes whether a company name is taken. Used by the
// public signup flow, so it reports only existence and the id.
func (s *CompanyService) CompanyNameExists(ctx context.Context, name string) (bool, int64, error) {
	company, err := s.companyRepo.FindCompanyByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, 0, nil
		}
		return false, 0, fmt.Errorf("failed to check company name: %w", err)
	}
	return true, company.CompanyID, nil
}
