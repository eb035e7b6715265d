package repositories

import (
	"context"

	"github.com/gstnote/gstnote_backend/internal/core/domain"
)

// TransactionReader defines read operations for notes.
type TransactionReader interface {
	// FindTransactionByID retrieves a note by number within a company.
	FindTransactionByID(ctx context.Context, companyID int64, transactionID string) (*domain.Transaction, error)

	// FindTransactionsByCompany retrieves all notes of a company with the
	// vendor name resolved, newest first.
	FindTransactionsByCompany(ctx context.Context, companyID int64) ([]domain.TransactionListing, error)
}

// TransactionWriter defines write operations for notes. Every write that
// touches line items rebuilds the item-group snapshot row inside the same
// database transaction, so the snapshot can never diverge from the items
// embedded in the details document.
type TransactionWriter interface {
	// SaveTransaction persists a new note, allocating the next number from
	// the global sequence (shared across DBN and CRN) atomically.
	SaveTransaction(ctx context.Context, companyID, vendorID int64, noteType domain.NoteType, details domain.NoteDetails) (*domain.Transaction, error)

	// UpdateTransactionDetails replaces a note's details document wholesale.
	UpdateTransactionDetails(ctx context.Context, companyID int64, transactionID string, details domain.NoteDetails) error

	// SetTransactionStatus flips only the status field inside the details
	// document (the cancel flow).
	SetTransactionStatus(ctx context.Context, companyID int64, transactionID string, status string) error

	// DeleteTransaction removes the note row and its item-group snapshot in
	// one database transaction.
	DeleteTransaction(ctx context.Context, companyID int64, transactionID string) error
}

// ItemGroupReader defines read operations for the separately stored line-item
// snapshot.
type ItemGroupReader interface {
	// FindItemGroup retrieves the item snapshot for a note.
	FindItemGroup(ctx context.Context, companyID int64, transactionID string) (*domain.ItemGroup, error)
}

// ItemGroupWriter defines write operations for the line-item snapshot. Writes
// go through to details->items so the embedded list stays the single source
// of truth.
type ItemGroupWriter interface {
	// SaveItemGroup replaces a note's line items (both the embedded list and
	// the snapshot row) in one database transaction.
	SaveItemGroup(ctx context.Context, companyID int64, transactionID string, items []domain.NoteItem) error
}

// TransactionRepositoryFacade combines all note repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	ItemGroupReader
	ItemGroupWriter
}
