package services

import (
	"context"

	"github.com/gstnote/gstnote_backend/internal/core/domain"
	"github.com/gstnote/gstnote_backend/internal/dto"
)

// TransactionSvcFacade defines note management, the line-item snapshot path
// and the note-document assembly used by PDF generation.
type TransactionSvcFacade interface {
	// CreateTransaction creates a note: allocates the next number from the
	// global sequence, assigns positional ITM ids and computes the total.
	CreateTransaction(ctx context.Context, companyID int64, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// ListTransactions retrieves all notes of the company with vendor names.
	ListTransactions(ctx context.Context, companyID int64) ([]domain.TransactionListing, error)

	// GetTransaction retrieves a note within the company.
	GetTransaction(ctx context.Context, companyID int64, transactionID string) (*domain.Transaction, error)

	// UpdateTransaction replaces the details document wholesale. Item ids
	// supplied by the caller are preserved verbatim, never regenerated.
	// Canceled notes are immutable.
	UpdateTransaction(ctx context.Context, companyID int64, transactionID string, req dto.UpdateTransactionRequest) error

	// CancelTransaction flips the status to "Canceled" (terminal).
	CancelTransaction(ctx context.Context, companyID int64, transactionID string) error

	// DeleteTransaction removes the note and its item-group snapshot.
	DeleteTransaction(ctx context.Context, companyID int64, transactionID string) error

	// GetItems retrieves the separately stored item-group document.
	GetItems(ctx context.Context, companyID int64, transactionID string) (*domain.ItemGroup, error)

	// SaveItems replaces the note's line items through the item-group path.
	SaveItems(ctx context.Context, companyID int64, transactionID string, items []dto.NoteItemPayload) error

	// AssembleNoteDocument merges the note, its vendor and its company into
	// a rendering-ready document with derived totals and amount-in-words.
	AssembleNoteDocument(ctx context.Context, companyID int64, transactionID string) (*domain.NoteDocument, error)
}
