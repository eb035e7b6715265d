package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gstnote/gstnote_backend/internal/apperrors"
	"github.com/gstnote/gstnote_backend/internal/core/domain"
	portsrepo "github.com/gstnote/gstnote_backend/internal/core/ports/repositories"
	portssvc "github.com/gstnote/gstnote_backend/internal/core/ports/services"
	"github.com/gstnote/gstnote_backend/internal/dto"
	"github.com/gstnote/gstnote_backend/internal/middleware"
	"github.com/gstnote/gstnote_backend/internal/utils/codes"
)

type TransactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	vendorRepo      portsrepo.VendorRepositoryFacade
	companyRepo     portsrepo.CompanyRepositoryFacade
}

func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, vendorRepo portsrepo.VendorRepositoryFacade, companyRepo portsrepo.CompanyRepositoryFacade) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		vendorRepo:      vendorRepo,
		companyRepo:     companyRepo,
	}
}

// Ensure TransactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// CreateTransaction creates a note for the caller's company. Line items get
// positional ITM ids here, once; the total is recomputed from the items and
// the note number comes from the global sequence shared by both note types.
func (s *TransactionService) CreateTransaction(ctx context.Context, companyID int64, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// The payload may name a company for backwards compatibility, but it can
	// only ever be the caller's own tenant.
	if req.CompanyID != 0 && req.CompanyID != companyID {
		return nil, apperrors.ErrForbidden
	}

	if _, err := s.vendorRepo.FindVendorByID(ctx, companyID, req.VendorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: vendor %d not found", apperrors.ErrValidation, req.VendorID)
		}
		return nil, fmt.Errorf("failed to validate vendor: %w", err)
	}

	details := dto.ToDomainDetails(req.Details)
	if details.Status == "" {
		details.Status = domain.StatusCreated
	}
	if details.TransactionDate == "" {
		details.TransactionDate = time.Now().Format("2006-01-02")
	}
	for i := range details.Items {
		details.Items[i].ItemID = codes.Format("ITM", int64(i+1))
	}
	details.RecomputeTotal()

	noteType := domain.Debit
	if details.TransactionType == string(domain.Credit) {
		noteType = domain.Credit
	}

	txn, err := s.transactionRepo.SaveTransaction(ctx, companyID, req.VendorID, noteType, details)
	if err != nil {
		logger.Error("Failed to create note", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	logger.Info("Note created", slog.String("transaction_id", txn.TransactionID), slog.Int64("vendor_id", req.VendorID))
	return txn, nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, companyID int64) ([]domain.TransactionListing, error) {
	listings, err := s.transactionRepo.FindTransactionsByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return listings, nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, companyID int64, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return txn, nil
}

// UpdateTransaction replaces the details document wholesale. Item ids arrive
// from the caller and are preserved verbatim; they were assigned at creation
// and are never regenerated. A canceled note rejects the update.
func (s *TransactionService) UpdateTransaction(ctx context.Context, companyID int64, transactionID string, req dto.UpdateTransactionRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.transactionRepo.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to load note for update: %w", err)
	}
	if existing.Details.Status == domain.StatusCanceled {
		return apperrors.ErrImmutable
	}

	details := dto.ToDomainDetails(req.Details)
	if details.Status == "" {
		details.Status = existing.Details.Status
	}
	details.RecomputeTotal()

	if err := s.transactionRepo.UpdateTransactionDetails(ctx, companyID, transactionID, details); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		logger.Error("Failed to update note", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to update note: %w", err)
	}

	logger.Info("Note updated", slog.String("transaction_id", transactionID))
	return nil
}

// CancelTransaction flips the note's status to Canceled. Canceled is
// terminal: canceling twice is rejected rather than silently accepted.
func (s *TransactionService) CancelTransaction(ctx context.Context, companyID int64, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.transactionRepo.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to load note for cancel: %w", err)
	}
	if existing.Details.Status == domain.StatusCanceled {
		return apperrors.ErrImmutable
	}

	if err := s.transactionRepo.SetTransactionStatus(ctx, companyID, transactionID, domain.StatusCanceled); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		logger.Error("Failed to cancel note", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to cancel note: %w", err)
	}

	logger.Info("Note canceled", slog.String("transaction_id", transactionID))
	return nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, companyID int64, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.transactionRepo.DeleteTransaction(ctx, companyID, transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete note: %w", err)
	}

	logger.Info("Note deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *TransactionService) GetItems(ctx context.Context, companyID int64, transactionID string) (*domain.ItemGroup, error) {
	group, err := s.transactionRepo.FindItemGroup(ctx, companyID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	return group, nil
}

// SaveItems replaces the note's line items through the item-group path. The
// write goes through the details document, which stays the single source of
// truth; item ids are taken as supplied.
func (s *TransactionService) SaveItems(ctx context.Context, companyID int64, transactionID string, items []dto.NoteItemPayload) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.transactionRepo.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to load note for item update: %w", err)
	}
	if existing.Details.Status == domain.StatusCanceled {
		return apperrors.ErrImmutable
	}

	if err := s.transactionRepo.SaveItemGroup(ctx, companyID, transactionID, dto.ToDomainItems(items)); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		logger.Error("Failed to save items", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to save items: %w", err)
	}

	logger.Info("Note items replaced", slog.String("transaction_id", transactionID), slog.Int("item_count", len(items)))
	return nil
}
