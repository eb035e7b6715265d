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

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// Helper to convert models.User to domain.User. A profile document that no
// longer decodes degrades to an empty profile; list and detail reads should
// not fail wholesale because one legacy row is corrupt.
func toDomainUser(m models.User) domain.User {
	profile, _ := domain.ParseUserProfile(m.Data)
	return domain.User{
		UserID:    m.UserID,
		CompanyID: m.CompanyID,
		Profile:   profile,
		CreatedAt: m.CreatedAt,
	}
}

// insertUser allocates the next USR code in the company's scope and inserts
// the user row, all on the supplied querier so callers can compose it into a
// wider transaction (company signup). The counter seeds from the newest row
// by creation time; ordering by user_id would compare codes as text, where
// USR999 sorts above USR1000.
func insertUser(ctx context.Context, q querier, companyID int64, profile domain.UserProfile) (*domain.User, error) {
	last, err := lastValue(ctx, q,
		`SELECT user_id FROM users WHERE company_id = $1 ORDER BY created_at DESC, user_id DESC LIMIT 1;`,
		companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to read last user code: %w", err)
	}

	seq, err := nextSequence(ctx, q, fmt.Sprintf("user:%d", companyID), codes.SuffixOf(last))
	if err != nil {
		return nil, err
	}
	userID := codes.Format("USR", seq)

	data, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user profile: %w", err)
	}

	m := models.User{UserID: userID, CompanyID: companyID, Data: data}
	query := `
		INSERT INTO users (user_id, company_id, data)
		VALUES ($1, $2, $3)
		RETURNING created_at;
	`
	if err := q.QueryRow(ctx, query, m.UserID, m.CompanyID, m.Data).Scan(&m.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	return &domain.User{
		UserID:    m.UserID,
		CompanyID: m.CompanyID,
		Profile:   profile,
		CreatedAt: m.CreatedAt,
	}, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, companyID int64, profile domain.UserProfile) (*domain.User, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	user, err := insertUser(ctx, tx, companyID, profile)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit user save: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, companyID int64, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, company_id, data, created_at
		FROM users
		WHERE company_id = $1 AND user_id = $2;
	`
	var m models.User
	err := r.Pool.QueryRow(ctx, query, companyID, userID).Scan(&m.UserID, &m.CompanyID, &m.Data, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	user := toDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) FindUsersByCompany(ctx context.Context, companyID int64) ([]domain.User, error) {
	query := `
		SELECT user_id, company_id, data, created_at
		FROM users
		WHERE company_id = $1
		ORDER BY created_at DESC, user_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var m models.User
		if err := rows.Scan(&m.UserID, &m.CompanyID, &m.Data, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, toDomainUser(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}
	return users, nil
}

// FindUserByEmail resolves a login identity across companies. Unlike the
// degrading reads above, a corrupt profile here is surfaced as
// apperrors.ErrCorruptData: authenticating against a half-decoded document
// would mean comparing a password to a missing hash.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT user_id, company_id, data, created_at
		FROM users
		WHERE data ->> 'email' = $1
		LIMIT 1;
	`
	var m models.User
	err := r.Pool.QueryRow(ctx, query, email).Scan(&m.UserID, &m.CompanyID, &m.Data, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	profile, ok := domain.ParseUserProfile(m.Data)
	if !ok {
		return nil, apperrors.ErrCorruptData
	}
	return &domain.User{
		UserID:    m.UserID,
		CompanyID: m.CompanyID,
		Profile:   profile,
		CreatedAt: m.CreatedAt,
	}, nil
}

func (r *PgxUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE data ->> 'email' = $1);`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	data, err := json.Marshal(user.Profile)
	if err != nil {
		return fmt.Errorf("failed to encode user profile: %w", err)
	}
	query := `UPDATE users SET data = $3 WHERE company_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, user.CompanyID, user.UserID, data)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, companyID int64, userID string) error {
	query := `DELETE FROM users WHERE company_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, companyID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
