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

type PgxVendorRepository struct {
	BaseRepository
}

func newPgxVendorRepository(db *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{BaseRepository{Pool: db}}
}

// Ensure PgxVendorRepository implements portsrepo.VendorRepositoryFacade
var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

// Helper to convert models.Vendor to domain.Vendor, degrading to an empty
// profile when the stored document is corrupt.
func toDomainVendor(m models.Vendor) domain.Vendor {
	profile, _ := domain.ParseVendorProfile(m.Data)
	return domain.Vendor{
		VendorID:  m.VendorID,
		CompanyID: m.CompanyID,
		Profile:   profile,
		CreatedAt: m.CreatedAt,
	}
}

// SaveVendor allocates the next VDR code for the company and inserts the
// vendor with the code stamped into its profile document, in one database
// transaction. The counter seeds from the highest vendor_code already stored
// for the company.
func (r *PgxVendorRepository) SaveVendor(ctx context.Context, companyID int64, profile domain.VendorProfile) (*domain.Vendor, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	last, err := lastValue(ctx, tx,
		`SELECT data ->> 'vendor_code' FROM vendors WHERE company_id = $1 ORDER BY vendor_id DESC LIMIT 1;`,
		companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to read last vendor code: %w", err)
	}

	seq, err := nextSequence(ctx, tx, fmt.Sprintf("vendor:%d", companyID), codes.SuffixOf(last))
	if err != nil {
		return nil, err
	}
	profile.VendorCode = codes.Format("VDR", seq)

	data, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode vendor profile: %w", err)
	}

	m := models.Vendor{CompanyID: companyID, Data: data}
	query := `
		INSERT INTO vendors (company_id, data)
		VALUES ($1, $2)
		RETURNING vendor_id, created_at;
	`
	if err := tx.QueryRow(ctx, query, m.CompanyID, m.Data).Scan(&m.VendorID, &m.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to save vendor: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit vendor save: %w", err)
	}
	return &domain.Vendor{
		VendorID:  m.VendorID,
		CompanyID: m.CompanyID,
		Profile:   profile,
		CreatedAt: m.CreatedAt,
	}, nil
}

func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, companyID, vendorID int64) (*domain.Vendor, error) {
	query := `
		SELECT vendor_id, company_id, data, created_at
		FROM vendors
		WHERE company_id = $1 AND vendor_id = $2;
	`
	var m models.Vendor
	err := r.Pool.QueryRow(ctx, query, companyID, vendorID).Scan(&m.VendorID, &m.CompanyID, &m.Data, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vendor %d: %w", vendorID, err)
	}
	vendor := toDomainVendor(m)
	return &vendor, nil
}

func (r *PgxVendorRepository) FindVendorsByCompany(ctx context.Context, companyID int64) ([]domain.Vendor, error) {
	query := `
		SELECT vendor_id, company_id, data, created_at
		FROM vendors
		WHERE company_id = $1
		ORDER BY vendor_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer rows.Close()

	vendors := make([]domain.Vendor, 0)
	for rows.Next() {
		var m models.Vendor
		if err := rows.Scan(&m.VendorID, &m.CompanyID, &m.Data, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vendor row: %w", err)
		}
		vendors = append(vendors, toDomainVendor(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vendor rows: %w", err)
	}
	return vendors, nil
}

func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	data, err := json.Marshal(vendor.Profile)
	if err != nil {
		return fmt.Errorf("failed to encode vendor profile: %w", err)
	}
	query := `UPDATE vendors SET data = $3 WHERE company_id = $1 AND vendor_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, vendor.CompanyID, vendor.VendorID, data)
	if err != nil {
		return fmt.Errorf("failed to update vendor %d: %w", vendor.VendorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVendorRepository) DeleteVendor(ctx context.Context, companyID, vendorID int64) error {
	query := `DELETE FROM vendors WHERE company_id = $1 AND vendor_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, companyID, vendorID)
	if err != nil {
		return fmt.Errorf("failed to delete vendor %d: %w", vendorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
