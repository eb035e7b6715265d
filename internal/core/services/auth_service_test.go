package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gstnote/gstnote_backend/internal/apperrors"
	"github.com/gstnote/gstnote_backend/internal/core/domain"
	"github.com/gstnote/gstnote_backend/internal/core/services"
	"github.com/gstnote/gstnote_backend/internal/dto"
	"github.com/gstnote/gstnote_backend/internal/platform/config"
	"github.com/gstnote/gstnote_backend/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo    *MockUserRepository
	mockCompanyRepo *MockCompanyRepository
	service         *services.AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTIssuer:         "gstnote-backend",
		JWTExpiryDuration: time.Hour,
	}
	suite.service = services.NewAuthService(cfg, suite.mockUserRepo, suite.mockCompanyRepo)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (suite *AuthServiceTestSuite) storedUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:    "USR001",
		CompanyID: 7,
		Profile: domain.UserProfile{
			FullName: "Asha Patel",
			Email:    "asha@example.com",
			Role:     "admin",
			Password: hash,
		},
	}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "asha@example.com").Return(suite.storedUser("s3cret-pass"), nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Email: "asha@example.com", Password: "s3cret-pass"})

	suite.Require().NoError(err)
	suite.True(resp.Success)
	suite.NotEmpty(resp.Token)
	suite.Equal("USR001", resp.User.UserID)
	suite.Equal(int64(7), resp.User.CompanyID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmailIsUnauthorized() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPasswordIsUnauthorized() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "asha@example.com").Return(suite.storedUser("s3cret-pass"), nil).Once()

	_, err := suite.service.Login(ctx, dto.LoginRequest{Email: "asha@example.com", Password: "wrong-pass"})

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_CorruptProfileSurfacesAsServerError() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "asha@example.com").Return(nil, apperrors.ErrCorruptData).Once()

	_, err := suite.service.Login(ctx, dto.LoginRequest{Email: "asha@example.com", Password: "s3cret-pass"})

	suite.ErrorIs(err, apperrors.ErrCorruptData)
	suite.NotErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestRegister_CreatesCompanyWithAdmin() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Company: dto.CreateCompanyRequest{CompanyName: "Sharma Constructions", Address: "Pune", GSTIN: "27AAPFU0939F1ZV"},
		User:    dto.CreateUserRequest{FullName: "Asha Patel", Email: "asha@example.com", Password: "s3cret-pass"},
	}

	suite.mockCompanyRepo.On("FindCompanyByName", ctx, "Sharma Constructions").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("EmailExists", ctx, "asha@example.com").Return(false, nil).Once()
	suite.mockCompanyRepo.On("SaveCompanyWithAdmin", ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.CompanyName == "Sharma Constructions" && c.CreatedBy == "asha@example.com"
	}), mock.MatchedBy(func(p domain.UserProfile) bool {
		// role defaults to admin and the password is stored hashed
		return p.Role == "admin" && p.Password != "s3cret-pass" && utils.CheckPasswordHash("s3cret-pass", p.Password)
	})).Return(
		&domain.Company{CompanyID: 12, CompanyName: "Sharma Constructions"},
		&domain.User{UserID: "USR001", CompanyID: 12},
		nil,
	).Once()

	resp, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.True(resp.Ok)
	suite.Equal(int64(12), resp.CompanyID)
	suite.Equal("USR001", resp.UserID)
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateCompanyNameRejected() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Company: dto.CreateCompanyRequest{CompanyName: "Sharma Constructions"},
		User:    dto.CreateUserRequest{FullName: "Asha Patel", Email: "asha@example.com", Password: "s3cret-pass"},
	}

	suite.mockCompanyRepo.On("FindCompanyByName", ctx, "Sharma Constructions").Return(&domain.Company{CompanyID: 12}, nil).Once()

	_, err := suite.service.Register(ctx, req)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "SaveCompanyWithAdmin", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmailRejected() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Company: dto.CreateCompanyRequest{CompanyName: "Sharma Constructions"},
		User:    dto.CreateUserRequest{FullName: "Asha Patel", Email: "asha@example.com", Password: "s3cret-pass"},
	}

	suite.mockCompanyRepo.On("FindCompanyByName", ctx, "Sharma Constructions").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("EmailExists", ctx, "asha@example.com").Return(true, nil).Once()

	_, err := suite.service.Register(ctx, req)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "SaveCompanyWithAdmin", mock.Anything, mock.Anything, mock.Anything)
}
