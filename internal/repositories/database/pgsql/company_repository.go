package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gstnote/gstnote_backend/internal/apperrors"
	"github.com/gstnote/gstnote_backend/internal/core/domain"
	portsrepo "github.com/gstnote/gstnote_backend/internal/core/ports/repositories"
	"github.com/gstnote/gstnote_backend/internal/models"
)

type PgxCompanyRepository struct {
	BaseRepository
}

func newPgxCompanyRepository(db *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{BaseRepository{Pool: db}}
}

// Ensure PgxCompanyRepository implements portsrepo.CompanyRepositoryFacade
var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Helper to convert domain.Company to models.Company
func toModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:     d.CompanyID,
		CompanyName:   d.CompanyName,
		Address:       nullString(d.Address),
		GSTIN:         nullString(d.GSTIN),
		Email:         nullString(d.Email),
		Phone:         nullString(d.Phone),
		ContactPerson: nullString(d.ContactPerson),
		CreatedBy:     nullString(d.CreatedBy),
		CreatedAt:     d.CreatedAt,
	}
}

// Helper to convert models.Company to domain.Company
func toDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:     m.CompanyID,
		CompanyName:   m.CompanyName,
		Address:       m.Address.String,
		GSTIN:         m.GSTIN.String,
		Email:         m.Email.String,
		Phone:         m.Phone.String,
		ContactPerson: m.ContactPerson.String,
		CreatedBy:     m.CreatedBy.String,
		CreatedAt:     m.CreatedAt,
	}
}

func scanCompany(row pgx.Row) (models.Company, error) {
	var m models.Company
	err := row.Scan(
		&m.CompanyID,
		&m.CompanyName,
		&m.Address,
		&m.GSTIN,
		&m.Email,
		&m.Phone,
		&m.ContactPerson,
		&m.CreatedBy,
		&m.CreatedAt,
	)
	return m, err
}

const companyColumns = `company_id, company_name, address, gstin, email, phone, contact_person, created_by, created_at`

func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	saved, err := insertCompany(ctx, r.Pool, company)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func insertCompany(ctx context.Context, q querier, company domain.Company) (*domain.Company, error) {
	m := toModelCompany(company)
	query := `
		INSERT INTO companies (company_name, address, gstin, email, phone, contact_person, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING company_id, created_at;
	`
	err := q.QueryRow(ctx, query,
		m.CompanyName,
		m.Address,
		m.GSTIN,
		m.Email,
		m.Phone,
		m.ContactPerson,
		m.CreatedBy,
	).Scan(&m.CompanyID, &m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save company: %w", err)
	}
	saved := toDomainCompany(m)
	return &saved, nil
}

// SaveCompanyWithAdmin creates a company and its first admin user in one
// database transaction, so a half-registered tenant can never exist.
func (r *PgxCompanyRepository) SaveCompanyWithAdmin(ctx context.Context, company domain.Company, admin domain.UserProfile) (*domain.Company, *domain.User, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	savedCompany, err := insertCompany(ctx, tx, company)
	if err != nil {
		return nil, nil, err
	}

	savedUser, err := insertUser(ctx, tx, savedCompany.CompanyID, admin)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to commit company registration: %w", err)
	}
	return savedCompany, savedUser, nil
}

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id = $1;`
	m, err := scanCompany(r.Pool.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company %d: %w", companyID, err)
	}
	company := toDomainCompany(m)
	return &company, nil
}

func (r *PgxCompanyRepository) FindCompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_name = $1 LIMIT 1;`
	m, err := scanCompany(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company by name: %w", err)
	}
	company := toDomainCompany(m)
	return &company, nil
}

func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	m := toModelCompany(company)
	query := `
		UPDATE companies
		SET company_name = $2, address = $3, gstin = $4, email = $5, phone = $6, contact_person = $7
		WHERE company_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CompanyID,
		m.CompanyName,
		m.Address,
		m.GSTIN,
		m.Email,
		m.Phone,
		m.ContactPerson,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update company %d: %w", m.CompanyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
