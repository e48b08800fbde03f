package services_test

import (
	"context"
	"testing"

	"github.com/stackforge-labs/webapp_suite/internal/apperrors"
	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	portssvc "github.com/stackforge-labs/webapp_suite/internal/core/ports/services"
	"github.com/stackforge-labs/webapp_suite/internal/core/services"
	"github.com/stackforge-labs/webapp_suite/internal/dto"
	"github.com/stackforge-labs/webapp_suite/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "password123",
		FullName: "Bob Builder",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "bob").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "bob@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "bob" &&
			user.Role == domain.RoleUser &&
			user.IsActive &&
			user.PasswordHash != "password123" &&
			utils.CheckPasswordHash("password123", user.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal("bob", user.Username)
	suite.Equal(domain.RoleUser, user.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateUsername() {
	ctx := context.Background()
	existing := &domain.User{UserID: "user-1", Username: "bob"}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "bob").Return(existing, nil).Once()

	user, err := suite.service.Register(ctx, dto.RegisterRequest{
		Username: "bob",
		Email:    "new@example.com",
		Password: "password123",
		FullName: "Bob Builder",
	})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	existing := &domain.User{UserID: "user-1", Email: "bob@example.com"}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "bob2").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "bob@example.com").Return(existing, nil).Once()

	user, err := suite.service.Register(ctx, dto.RegisterRequest{
		Username: "bob2",
		Email:    "bob@example.com",
		Password: "password123",
		FullName: "Bob Builder",
	})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateProfile_NameOnly() {
	ctx := context.Background()
	claims := domain.Claims{Subject: "bob", Role: domain.RoleUser}
	existing := &domain.User{UserID: "user-1", Username: "bob", Email: "bob@example.com", FullName: "Bob"}
	newName := "Robert Builder"

	suite.mockUserRepo.On("FindUserByUsername", ctx, "bob").Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateProfile", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.FullName == newName && user.Email == "bob@example.com"
	})).Return(nil).Once()

	user, err := suite.service.UpdateProfile(ctx, claims, dto.UpdateProfileRequest{FullName: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, user.FullName)
	// Email untouched, so no uniqueness lookup should run.
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateProfile_EmailTaken() {
	ctx := context.Background()
	claims := domain.Claims{Subject: "bob", Role: domain.RoleUser}
	existing := &domain.User{UserID: "user-1", Username: "bob", Email: "bob@example.com"}
	taken := "alice@example.com"

	suite.mockUserRepo.On("FindUserByUsername", ctx, "bob").Return(existing, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, taken).Return(&domain.User{UserID: "user-2"}, nil).Once()

	user, err := suite.service.UpdateProfile(ctx, claims, dto.UpdateProfileRequest{Email: &taken})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateProfile", mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
