package userrepo_test

import (
	"context"
	"testing"

	"orderdesk/internal/adapters/out/postgres/postgrestest"
	"orderdesk/internal/adapters/out/postgres/userrepo"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *postgrestest.Database
	repository *userrepo.GormUserRepository
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := postgrestest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(pg.DB.AutoMigrate(&userrepo.UserDTO{}))
	suite.repository = userrepo.NewGormUserRepository(pg.DB)
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("users"))
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *UserRepositoryIntegrationTestSuite) add(name string, role user.Role, approved bool) *user.User {
	u, err := user.RestoreUser(kernel.NewUUID(), name, role, approved)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(suite.T().Context(), u))
	return u
}

func (suite *UserRepositoryIntegrationTestSuite) TestAddGetUpdate() {
	ctx := suite.T().Context()
	u := suite.add("dana", user.Driver, false)

	got, err := suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal("dana", got.Name())
	suite.True(got.Is(user.Driver))
	suite.False(got.IsApproved())

	got.Approve()
	suite.Require().NoError(suite.repository.Update(ctx, got))

	got, err = suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEligibleDriver())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateName() {
	suite.add("dana", user.Driver, false)
	other, err := user.NewUser(kernel.NewUUID(), "dana", user.Seller)
	suite.Require().NoError(err)

	err = suite.repository.Add(suite.T().Context(), other)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.Contains(err.Error(), "user name dana")
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateID() {
	first := suite.add("erin", user.Driver, false)
	other, err := user.RestoreUser(first.ID(), "frank", user.Seller, false)
	suite.Require().NoError(err)

	err = suite.repository.Add(suite.T().Context(), other)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.Contains(err.Error(), "user id "+first.ID().String())
}

func (suite *UserRepositoryIntegrationTestSuite) TestNotFound() {
	ctx := suite.T().Context()
	ghost, err := user.NewUser(kernel.NewUUID(), "ghost", user.Seller)
	suite.Require().NoError(err)

	_, err = suite.repository.Get(ctx, ghost.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().ErrorIs(suite.repository.Update(ctx, ghost), errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestList_Filters() {
	ctx := suite.T().Context()
	suite.add("carol", user.Driver, true)
	suite.add("alice", user.Driver, false)
	suite.add("bob", user.Seller, true)
	suite.add("root", user.Admin, true)

	all, err := suite.repository.List(ctx, ports.UserFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(all, 4)
	suite.Equal("alice", all[0].Name())

	driver := user.Driver
	drivers, err := suite.repository.List(ctx, ports.UserFilter{Role: &driver})
	suite.Require().NoError(err)
	suite.Len(drivers, 2)

	approved := true
	eligible, err := suite.repository.List(ctx, ports.UserFilter{Role: &driver, Approved: &approved})
	suite.Require().NoError(err)
	suite.Require().Len(eligible, 1)
	suite.Equal("carol", eligible[0].Name())
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
