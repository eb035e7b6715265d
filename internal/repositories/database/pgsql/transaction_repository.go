package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gstnote/gstnote_backend/internal/apperrors"
	"github.com/gstnote/gstnote_backend/internal/core/domain"
	portsrepo "github.com/gstnote/gstnote_backend/internal/core/ports/repositories"
	"github.com/gstnote/gstnote_backend/internal/models"
	"github.com/gstnote/gstnote_backend/internal/utils/codes"
)

// transactionScopeKey names the single counter shared by debit and credit
// notes. Note numbers are one sequence across both prefixes: creating DBN004
// after CRN003 is correct, the prefix only records the type of the note that
// took that slot.
const transactionScopeKey = "transaction"

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: db}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// Helper to convert models.Transaction to domain.Transaction, degrading to
// empty details when the stored document is corrupt.
func toDomainTransaction(m models.Transaction) domain.Transaction {
	details, _ := domain.ParseNoteDetails(m.Details)
	return domain.Transaction{
		TransactionID: m.TransactionID,
		CompanyID:     m.CompanyID,
		VendorID:      m.VendorID,
		Details:       details,
		CreatedAt:     m.CreatedAt,
	}
}

// upsertItemGroup rebuilds the line-item snapshot row for a note from its
// details document. Always called on the same transaction as the note write.
func upsertItemGroup(ctx context.Context, q querier, transactionID string, items []domain.NoteItem) error {
	if items == nil {
		items = []domain.NoteItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode item snapshot: %w", err)
	}
	query := `
		INSERT INTO transaction_items (transaction_id, items)
		VALUES ($1, $2)
		ON CONFLICT (transaction_id)
		DO UPDATE SET items = EXCLUDED.items;
	`
	if _, err := q.Exec(ctx, query, transactionID, data); err != nil {
		return fmt.Errorf("failed to save item snapshot: %w", err)
	}
	return nil
}

// SaveTransaction allocates the next note number from the shared sequence,
// inserts the note and writes its item snapshot, all in one database
// transaction. The sequence seeds from the most recently created note of
// either type.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, companyID, vendorID int64, noteType domain.NoteType, details domain.NoteDetails) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	last, err := lastValue(ctx, tx,
		`SELECT transaction_id FROM transactions ORDER BY created_at DESC, transaction_id DESC LIMIT 1;`)
	if err != nil {
		return nil, fmt.Errorf("failed to read last note number: %w", err)
	}

	seq, err := nextSequence(ctx, tx, transactionScopeKey, codes.SuffixOf(last))
	if err != nil {
		return nil, err
	}
	transactionID := codes.Format(noteType.Prefix(), seq)

	data, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("failed to encode note details: %w", err)
	}

	m := models.Transaction{
		TransactionID: transactionID,
		CompanyID:     companyID,
		VendorID:      vendorID,
		Details:       data,
	}
	query := `
		INSERT INTO transactions (transaction_id, company_id, vendor_id, details)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at;
	`
	if err := tx.QueryRow(ctx, query, m.TransactionID, m.CompanyID, m.VendorID, m.Details).Scan(&m.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save note %s: %w", transactionID, err)
	}

	if err := upsertItemGroup(ctx, tx, transactionID, details.Items); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit note save: %w", err)
	}
	return &domain.Transaction{
		TransactionID: m.TransactionID,
		CompanyID:     m.CompanyID,
		VendorID:      m.VendorID,
		Details:       details,
		CreatedAt:     m.CreatedAt,
	}, nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, companyID int64, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, company_id, vendor_id, details, created_at
		FROM transactions
		WHERE company_id = $1 AND transaction_id = $2;
	`
	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, companyID, transactionID).Scan(
		&m.TransactionID, &m.CompanyID, &m.VendorID, &m.Details, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find note %s: %w", transactionID, err)
	}
	txn := toDomainTransaction(m)
	return &txn, nil
}

func (r *PgxTransactionRepository) FindTransactionsByCompany(ctx context.Context, companyID int64) ([]domain.TransactionListing, error) {
	query := `
		SELECT t.transaction_id, t.company_id, t.vendor_id, t.details, t.created_at,
		       COALESCE(v.data ->> 'vendor_name', '')
		FROM transactions t
		LEFT JOIN vendors v ON v.vendor_id = t.vendor_id AND v.company_id = t.company_id
		WHERE t.company_id = $1
		ORDER BY t.created_at DESC, t.transaction_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	listings := make([]domain.TransactionListing, 0)
	for rows.Next() {
		var m models.Transaction
		var vendorName string
		if err := rows.Scan(&m.TransactionID, &m.CompanyID, &m.VendorID, &m.Details, &m.CreatedAt, &vendorName); err != nil {
			return nil, fmt.Errorf("failed to scan note row: %w", err)
		}
		listings = append(listings, domain.TransactionListing{
			Transaction: toDomainTransaction(m),
			VendorName:  vendorName,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate note rows: %w", err)
	}
	return listings, nil
}

func (r *PgxTransactionRepository) UpdateTransactionDetails(ctx context.Context, companyID int64, transactionID string, details domain.NoteDetails) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	data, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to encode note details: %w", err)
	}
	query := `UPDATE transactions SET details = $3 WHERE company_id = $1 AND transaction_id = $2;`
	tag, err := tx.Exec(ctx, query, companyID, transactionID, data)
	if err != nil {
		return fmt.Errorf("failed to update note %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := upsertItemGroup(ctx, tx, transactionID, details.Items); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit note update: %w", err)
	}
	return nil
}

// SetTransactionStatus mutates only the status field inside the details
// document. Items and totals are untouched, so the snapshot row needs no
// rebuild here.
func (r *PgxTransactionRepository) SetTransactionStatus(ctx context.Context, companyID int64, transactionID string, status string) error {
	query := `
		UPDATE transactions
		SET details = jsonb_set(details, '{status}', to_jsonb($3::text))
		WHERE company_id = $1 AND transaction_id = $2 AND jsonb_typeof(details) = 'object';
	`
	tag, err := r.Pool.Exec(ctx, query, companyID, transactionID, status)
	if err != nil {
		return fmt.Errorf("failed to set status of note %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, companyID int64, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx,
		`DELETE FROM transactions WHERE company_id = $1 AND transaction_id = $2;`,
		companyID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete note %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM transaction_items WHERE transaction_id = $1;`,
		transactionID); err != nil {
		return fmt.Errorf("failed to delete item snapshot of note %s: %w", transactionID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit note delete: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindItemGroup(ctx context.Context, companyID int64, transactionID string) (*domain.ItemGroup, error) {
	query := `
		SELECT g.item_group_id, g.transaction_id, g.items
		FROM transaction_items g
		JOIN transactions t ON t.transaction_id = g.transaction_id
		WHERE t.company_id = $1 AND g.transaction_id = $2;
	`
	var m models.TransactionItemGroup
	err := r.Pool.QueryRow(ctx, query, companyID, transactionID).Scan(&m.ItemGroupID, &m.TransactionID, &m.Items)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find item snapshot of note %s: %w", transactionID, err)
	}

	var items []domain.NoteItem
	if len(m.Items) > 0 {
		if err := json.Unmarshal(m.Items, &items); err != nil {
			items = nil
		}
	}
	return &domain.ItemGroup{
		ItemGroupID:   m.ItemGroupID,
		TransactionID: m.TransactionID,
		Items:         items,
	}, nil
}

// SaveItemGroup replaces a note's line items. The embedded details list is
// the source of truth, so the write goes through it: the details document is
// re-read under lock, its items swapped, and the snapshot rebuilt, all in one
// database transaction.
func (r *PgxTransactionRepository) SaveItemGroup(ctx context.Context, companyID int64, transactionID string, items []domain.NoteItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var raw []byte
	err = tx.QueryRow(ctx,
		`SELECT details FROM transactions WHERE company_id = $1 AND transaction_id = $2 FOR UPDATE;`,
		companyID, transactionID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to load note %s for item update: %w", transactionID, err)
	}

	details, _ := domain.ParseNoteDetails(raw)
	details.Items = items
	details.RecomputeTotal()

	data, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to encode note details: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE transactions SET details = $3 WHERE company_id = $1 AND transaction_id = $2;`,
		companyID, transactionID, data); err != nil {
		return fmt.Errorf("failed to update note %s items: %w", transactionID, err)
	}

	if err := upsertItemGroup(ctx, tx, transactionID, items); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit item update: %w", err)
	}
	return nil
}
