package services_test

import (
	"context"
	"testing"

	"github.com/stackforge-labs/webapp_suite/internal/apperrors"
	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	portssvc "github.com/stackforge-labs/webapp_suite/internal/core/ports/services"
	"github.com/stackforge-labs/webapp_suite/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AdminServiceTestSuite struct {
	suite.Suite
	mockUserRepo    *MockUserRepository
	mockRefreshRepo *MockRefreshTokenRepository
	service         portssvc.AdminSvcFacade

	adminClaims domain.Claims
	userClaims  domain.Claims
}

func (suite *AdminServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockRefreshRepo = new(MockRefreshTokenRepository)
	suite.service = services.NewAdminService(suite.mockUserRepo, suite.mockRefreshRepo)
	suite.adminClaims = domain.Claims{Subject: "root", Role: domain.RoleAdmin}
	suite.userClaims = domain.Claims{Subject: "bob", Role: domain.RoleUser}
}

func (suite *AdminServiceTestSuite) TestListUsers_DeniedForUserRole() {
	ctx := context.Background()

	users, err := suite.service.ListUsers(ctx, suite.userClaims, 20, 0)

	suite.Require().Error(err)
	suite.Nil(users)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUsers", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AdminServiceTestSuite) TestListUsers_AllowedForAdmin() {
	ctx := context.Background()
	expected := []domain.User{{UserID: "user-1"}, {UserID: "user-2"}}
	suite.mockUserRepo.On("FindUsers", ctx, 20, 0).Return(expected, nil).Once()

	users, err := suite.service.ListUsers(ctx, suite.adminClaims, 20, 0)

	suite.Require().NoError(err)
	suite.Len(users, 2)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AdminServiceTestSuite) TestSetUserRole_RevokesRefreshTokens() {
	ctx := context.Background()
	target := &domain.User{UserID: "user-2", Username: "carol", Role: domain.RoleUser}

	suite.mockUserRepo.On("FindUserByID", ctx, "user-2").Return(target, nil).Once()
	suite.mockUserRepo.On("SetRole", ctx, "user-2", domain.RoleAdmin).Return(nil).Once()
	suite.mockRefreshRepo.On("DeleteByUserID", ctx, "user-2").Return(nil).Once()

	user, err := suite.service.SetUserRole(ctx, suite.adminClaims, "user-2", domain.RoleAdmin)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, user.Role)
	suite.mockRefreshRepo.AssertExpectations(suite.T())
}

func (suite *AdminServiceTestSuite) TestSetUserRole_NoopWhenUnchanged() {
	ctx := context.Background()
	target := &domain.User{UserID: "user-2", Username: "carol", Role: domain.RoleUser}
	suite.mockUserRepo.On("FindUserByID", ctx, "user-2").Return(target, nil).Once()

	user, err := suite.service.SetUserRole(ctx, suite.adminClaims, "user-2", domain.RoleUser)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleUser, user.Role)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SetRole", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRefreshRepo.AssertNotCalled(suite.T(), "DeleteByUserID", mock.Anything, mock.Anything)
}

func (suite *AdminServiceTestSuite) TestSetUserRole_DeniedForUserRole() {
	ctx := context.Background()

	user, err := suite.service.SetUserRole(ctx, suite.userClaims, "user-2", domain.RoleAdmin)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AdminServiceTestSuite) TestToggleUserStatus_DeactivationRevokesTokens() {
	ctx := context.Background()
	target := &domain.User{UserID: "user-2", Username: "carol", IsActive: true}

	suite.mockUserRepo.On("FindUserByID", ctx, "user-2").Return(target, nil).Once()
	suite.mockUserRepo.On("SetActive", ctx, "user-2", false).Return(nil).Once()
	suite.mockRefreshRepo.On("DeleteByUserID", ctx, "user-2").Return(nil).Once()

	user, err := suite.service.ToggleUserStatus(ctx, suite.adminClaims, "user-2")

	suite.Require().NoError(err)
	suite.False(user.IsActive)
	suite.mockRefreshRepo.AssertExpectations(suite.T())
}

func (suite *AdminServiceTestSuite) TestToggleUserStatus_ReactivationKeepsTokensAlone() {
	ctx := context.Background()
	target := &domain.User{UserID: "user-2", Username: "carol", IsActive: false}

	suite.mockUserRepo.On("FindUserByID", ctx, "user-2").Return(target, nil).Once()
	suite.mockUserRepo.On("SetActive", ctx, "user-2", true).Return(nil).Once()

	user, err := suite.service.ToggleUserStatus(ctx, suite.adminClaims, "user-2")

	suite.Require().NoError(err)
	suite.True(user.IsActive)
	suite.mockRefreshRepo.AssertNotCalled(suite.T(), "DeleteByUserID", mock.Anything, mock.Anything)
}

func (suite *AdminServiceTestSuite) TestToggleUserStatus_TargetNotFound() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.ToggleUserStatus(ctx, suite.adminClaims, "ghost")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
