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
	"github.com/gstnote/gstnote_backend/internal/utils"
)

type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade) *UserService {
	return &UserService{userRepo: userRepo}
}

// Ensure UserService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*UserService)(nil)

func (s *UserService) CreateUser(ctx context.Context, companyID int64, req dto.CreateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	taken, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := domain.UserProfile{
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      req.Role,
		Password:  hash,
		CreatedAt: time.Now(),
	}
	user, err := s.userRepo.SaveUser(ctx, companyID, profile)
	if err != nil {
		logger.Error("Failed to create user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("User created", slog.String("user_id", user.UserID), slog.Int64("company_id", companyID))
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, companyID int64, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, companyID int64) ([]domain.User, error) {
	users, err := s.userRepo.FindUsersByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser applies a partial update. The password is re-hashed only when a
// new one is supplied; an absent or empty password leaves the stored hash
// untouched.
func (s *UserService) UpdateUser(ctx context.Context, companyID int64, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load user for update: %w", err)
	}

	if req.FullName != nil {
		user.Profile.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Profile.Email = *req.Email
	}
	if req.Phone != nil {
		user.Profile.Phone = *req.Phone
	}
	if req.Role != nil {
		user.Profile.Role = *req.Role
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Profile.Password = hash
	}

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		logger.Error("Failed to update user", slog.String("user_id", userID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	logger.Info("User updated", slog.String("user_id", userID), slog.Int64("company_id", companyID))
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, companyID int64, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.userRepo.DeleteUser(ctx, companyID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	logger.Info("User deleted", slog.String("user_id", userID), slog.Int64("company_id", companyID))
	return nil
}

func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}
