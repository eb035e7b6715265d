package services

import (
	"context"

	"github.com/gstnote/gstnote_backend/internal/dto"
)

// AuthSvcFacade defines credential verification and signup.
type AuthSvcFacade interface {
	// Login verifies the credentials and issues a signed token. Unknown
	// email and wrong password are indistinguishable to the caller
	// (apperrors.ErrUnauthorized either way).
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// Register creates a company and its first user atomically.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)
}
