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
	"github.com/gstnote/gstnote_backend/internal/platform/config"
	"github.com/gstnote/gstnote_backend/internal/utils"
)

type AuthService struct {
	userRepo    portsrepo.UserRepositoryFacade
	companyRepo portsrepo.CompanyRepositoryFacade
	cfg         *config.Config
}

func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, companyRepo portsrepo.CompanyRepositoryFacade) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		cfg:         cfg,
	}
}

// Ensure AuthService implements the portssvc.AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

// Login verifies the credentials and issues a signed token. An unknown email
// and a wrong password both come back as apperrors.ErrUnauthorized so the
// response cannot leak which half was wrong. A corrupt stored profile is the
// one case surfaced as a server error: there is no hash to compare against.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Login attempt for unknown email")
			return nil, apperrors.ErrUnauthorized
		}
		if errors.Is(err, apperrors.ErrCorruptData) {
			logger.Error("Stored user profile is corrupt", slog.String("email", req.Email))
			return nil, err
		}
		logger.Error("Failed to look up user for login", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.Profile.Password) {
		logger.Warn("Login attempt with wrong password", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(user.UserID, user.CompanyID, user.Profile.Email, user.Profile.Role,
		s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.JWTExpiryDuration)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID), slog.Int64("company_id", user.CompanyID))
	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User: dto.LoginUser{
			UserID:    user.UserID,
			CompanyID: user.CompanyID,
			Email:     user.Profile.Email,
			Phone:     user.Profile.Phone,
			Role:      user.Profile.Role,
			FullName:  user.Profile.FullName,
		},
	}, nil
}

// Register creates a company and its first admin user atomically.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.companyRepo.FindCompanyByName(ctx, req.Company.CompanyName); err == nil {
		return nil, fmt.Errorf("%w: company name already registered", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check company name: %w", err)
	}

	taken, err := s.userRepo.EmailExists(ctx, req.User.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.User.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.User.Role
	if role == "" {
		role = "admin"
	}

	company := domain.Company{
		CompanyName:   req.Company.CompanyName,
		Address:       req.Company.Address,
		GSTIN:         req.Company.GSTIN,
		Email:         req.Company.Email,
		Phone:         req.Company.Phone,
		ContactPerson: req.Company.ContactPerson,
		CreatedBy:     req.User.Email,
	}
	admin := domain.UserProfile{
		FullName:  req.User.FullName,
		Email:     req.User.Email,
		Phone:     req.User.Phone,
		Role:      role,
		Password:  hash,
		CreatedAt: time.Now(),
	}

	savedCompany, savedUser, err := s.companyRepo.SaveCompanyWithAdmin(ctx, company, admin)
	if err != nil {
		logger.Error("Failed to register company", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to register company: %w", err)
	}

	logger.Info("Company registered", slog.Int64("company_id", savedCompany.CompanyID), slog.String("user_id", savedUser.UserID))
	return &dto.RegisterResponse{
		Ok:        true,
		CompanyID: savedCompany.CompanyID,
		UserID:    savedUser.UserID,
	}, nil
}
