package services

import (
	"context"

	"github.com/gstnote/gstnote_backend/internal/core/domain"
	"github.com/gstnote/gstnote_backend/internal/dto"
)

// UserSvcFacade defines company-scoped user management.
type UserSvcFacade interface {
	// CreateUser creates a user in the company, hashing the password and
	// allocating the next USR code.
	CreateUser(ctx context.Context, companyID int64, req dto.CreateUserRequest) (*domain.User, error)

	// GetUserByID retrieves a user within the company.
	GetUserByID(ctx context.Context, companyID int64, userID string) (*domain.User, error)

	// ListUsers retrieves all users of the company.
	ListUsers(ctx context.Context, companyID int64) ([]domain.User, error)

	// UpdateUser applies a partial update; the password is re-hashed only
	// when a new one is supplied.
	UpdateUser(ctx context.Context, companyID int64, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUser removes a user within the company. Colliding user codes in
	// other companies are unaffected.
	DeleteUser(ctx context.Context, companyID int64, userID string) error

	// EmailExists probes whether any account carries the email (signup).
	EmailExists(ctx context.Context, email string) (bool, error)
}
