//go:build integration
// +build integration

package repository

import (
	"testing"

	"foodgram-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserRepositoryTestSuite) TestCreateAndLookup() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))
	suite.NotZero(user.ID)

	byID, err := suite.repo.GetByID(user.ID)
	suite.Require().NoError(err)
	suite.Equal(user.Email, byID.Email)

	byEmail, err := suite.repo.GetByEmail(user.Email)
	suite.Require().NoError(err)
	suite.Equal(user.ID, byEmail.ID)

	byUsername, err := suite.repo.GetByUsername(user.Username)
	suite.Require().NoError(err)
	suite.Equal(user.ID, byUsername.ID)
}

func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(99999)
	suite.True(IsNotFound(err))
}

// TestDuplicateEmail expects the unique index to reject a second account
func (suite *UserRepositoryTestSuite) TestDuplicateEmail() {
	first := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(first))

	second := suite.factories.User.Create()
	second.Email = first.Email
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.True(IsUniqueViolation(err))
}

func (suite *UserRepositoryTestSuite) TestDuplicateUsername() {
	first := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(first))

	err := suite.repo.Create(suite.factories.User.WithUsername(first.Username))

	suite.True(IsUniqueViolation(err))
}

func (suite *UserRepositoryTestSuite) TestGetAllPaginates() {
	for i := 0; i < 5; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factories.User.Create()))
	}

	users, total, err := suite.repo.GetAll(2, 2)

	suite.Require().NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(users, 2)
	suite.Less(users[0].ID, users[1].ID)
}

func (suite *UserRepositoryTestSuite) TestUpdatePassword() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))

	suite.Require().NoError(suite.repo.UpdatePassword(user.ID, "new-hash"))

	stored, err := suite.repo.GetByID(user.ID)
	suite.Require().NoError(err)
	suite.Equal("new-hash", stored.PasswordHash)

	suite.True(IsNotFound(suite.repo.UpdatePassword(99999, "x")))
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
