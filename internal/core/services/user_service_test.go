package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gstnote/gstnote_backend/internal/apperrors"
	"github.com/gstnote/gstnote_backend/internal/core/domain"
	"github.com/gstnote/gstnote_backend/internal/core/services"
	"github.com/gstnote/gstnote_backend/internal/dto"
	"github.com/gstnote/gstnote_backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  *services.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	ctx := context.Background()
	companyID := int64(7)
	req := dto.CreateUserRequest{
		FullName: "Asha Patel",
		Email:    "asha@example.com",
		Role:     "accountant",
		Password: "s3cret-pass",
	}

	suite.mockRepo.On("EmailExists", ctx, "asha@example.com").Return(false, nil).Once()
	suite.mockRepo.On("SaveUser", ctx, companyID, mock.MatchedBy(func(p domain.UserProfile) bool {
		if p.Password == "" || p.Password == "s3cret-pass" {
			return false
		}
		return utils.CheckPasswordHash("s3cret-pass", p.Password)
	})).Return(&domain.User{UserID: "USR002", CompanyID: companyID}, nil).Once()

	user, err := suite.service.CreateUser(ctx, companyID, req)

	suite.Require().NoError(err)
	suite.Equal("USR002", user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmailRejected() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		FullName: "Asha Patel",
		Email:    "asha@example.com",
		Password: "s3cret-pass",
	}

	suite.mockRepo.On("EmailExists", ctx, "asha@example.com").Return(true, nil).Once()

	_, err := suite.service.CreateUser(ctx, 7, req)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_KeepsHashWhenPasswordOmitted() {
	ctx := context.Background()
	companyID := int64(7)
	newPhone := "9876543210"

	suite.mockRepo.On("FindUserByID", ctx, companyID, "USR002").Return(&domain.User{
		UserID:    "USR002",
		CompanyID: companyID,
		Profile:   domain.UserProfile{FullName: "Asha Patel", Email: "asha@example.com", Password: "$2a$10$existinghash"},
	}, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Profile.Phone == newPhone && u.Profile.Password == "$2a$10$existinghash"
	})).Return(nil).Once()

	_, err := suite.service.UpdateUser(ctx, companyID, "USR002", dto.UpdateUserRequest{Phone: &newPhone})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_RehashesWhenPasswordSupplied() {
	ctx := context.Background()
	companyID := int64(7)
	newPass := "new-pass-123"

	suite.mockRepo.On("FindUserByID", ctx, companyID, "USR002").Return(&domain.User{
		UserID:    "USR002",
		CompanyID: companyID,
		Profile:   domain.UserProfile{Email: "asha@example.com", Password: "$2a$10$existinghash"},
	}, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Profile.Password != "$2a$10$existinghash" && utils.CheckPasswordHash(newPass, u.Profile.Password)
	})).Return(nil).Once()

	_, err := suite.service.UpdateUser(ctx, companyID, "USR002", dto.UpdateUserRequest{Password: &newPass})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_EmptyPasswordKeepsHash() {
	ctx := context.Background()
	companyID := int64(7)
	empty := ""

	suite.mockRepo.On("FindUserByID", ctx, companyID, "USR002").Return(&domain.User{
		UserID:    "USR002",
		CompanyID: companyID,
		Profile:   domain.UserProfile{Email: "asha@example.com", Password: "$2a$10$existinghash"},
	}, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Profile.Password == "$2a$10$existinghash"
	})).Return(nil).Once()

	_, err := suite.service.UpdateUser(ctx, companyID, "USR002", dto.UpdateUserRequest{Password: &empty})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFoundPassesThrough() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByID", ctx, int64(7), "USR404").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetUserByID(ctx, 7, "USR404")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}
