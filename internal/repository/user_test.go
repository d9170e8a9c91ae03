//go:build integration
// +build integration

package repository

import (
	"testing"

	"new-arrivals-chi/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
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

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.NotZero(user.CreatedAt)
	suite.NotZero(user.UpdatedAt)
}

// TestCreateDuplicateEmail tests the unique email constraint
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	err := suite.repo.Create(suite.factories.User.WithEmail("dup@example.com"))
	suite.NoError(err)

	err = suite.repo.Create(suite.factories.User.WithEmail("dup@example.com"))
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByID tests retrieving a user by ID
func (suite *UserRepositoryTestSuite) TestGetByID() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetByID(user.ID)

	suite.NoError(err)
	suite.Equal(user.Email, retrieved.Email)
	suite.Equal(user.Role, retrieved.Role)
}

// TestGetByIDNotFound tests retrieving an unknown user
func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	retrieved, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(retrieved)
}

// TestGetByEmail tests retrieving a user by email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.WithEmail("findme@example.com")
	suite.Require().NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetByEmail("findme@example.com")
	suite.NoError(err)
	suite.Equal(user.ID, retrieved.ID)

	_, err = suite.repo.GetByEmail("missing@example.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetWithOrganization tests preloading the managed organization
func (suite *UserRepositoryTestSuite) TestGetWithOrganization() {
	org := suite.factories.Organization.WithName("Refugee One")
	suite.Require().NoError(suite.orgRepo.Create(org))

	user := suite.factories.User.WithOrganization(org.ID)
	suite.Require().NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetWithOrganization(user.ID)

	suite.NoError(err)
	suite.Require().NotNil(retrieved.Organization)
	suite.Equal("Refugee One", retrieved.Organization.Name)
}

// TestUpdatePassword tests replacing a password hash
func (suite *UserRepositoryTestSuite) TestUpdatePassword() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))

	err := suite.repo.UpdatePassword(user.ID, "new-hash")
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal("new-hash", retrieved.Password)

	err = suite.repo.UpdatePassword(uuid.New(), "new-hash")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpdate tests saving a modified user
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))

	user.Email = "changed@example.com"
	suite.NoError(suite.repo.Update(user))

	retrieved, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal("changed@example.com", retrieved.Email)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
