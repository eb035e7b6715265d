package repositories

import (
	"context"

	"github.com/gstnote/gstnote_backend/internal/core/domain"
)

// UserReader defines read operations for user data. All company-scoped reads
// treat a cross-tenant id as not found.
type UserReader interface {
	// FindUserByID retrieves a user by code within a company.
	FindUserByID(ctx context.Context, companyID int64, userID string) (*domain.User, error)

	// FindUsersByCompany retrieves all users of a company, newest first.
	FindUsersByCompany(ctx context.Context, companyID int64) ([]domain.User, error)

	// FindUserByEmail looks a user up by the email inside the profile
	// document, across companies (login). Returns apperrors.ErrCorruptData
	// when the stored profile cannot be decoded.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// EmailExists reports whether any user carries the given email.
	EmailExists(ctx context.Context, email string) (bool, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user, allocating the next USR code in the
	// company's scope atomically with the insert.
	SaveUser(ctx context.Context, companyID int64, profile domain.UserProfile) (*domain.User, error)

	// UpdateUser replaces a user's profile document.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes a user by code within a company.
	DeleteUser(ctx context.Context, companyID int64, userID string) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
