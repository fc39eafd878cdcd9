//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"training-portal-backend/internal/database/models"
	"training-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ExerciseRepositoryTestSuite tests the ExerciseRepository
type ExerciseRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ExerciseRepository
	orgRepo       *OrganizationRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ExerciseRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewExerciseRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ExerciseRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ExerciseRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ExerciseRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ExerciseRepositoryTestSuite) createOrganization() *models.Organization {
	owner := suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.Create(owner))
	org := suite.factories.Organization.WithOwner(owner.ID)
	suite.Require().NoError(suite.orgRepo.CreateWithOwner(org, owner.ID))
	return org
}

// TestCreate tests creating an exercise
func (suite *ExerciseRepositoryTestSuite) TestCreate() {
	org := suite.createOrganization()
	exercise := suite.factories.Exercise.Create(org.ID)

	err := suite.repo.Create(exercise)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, exercise.ID)
	suite.Equal(models.ExerciseStatusPlanned, exercise.Status)
}

// TestGetByIDNotFound tests retrieving a non-existent exercise
func (suite *ExerciseRepositoryTestSuite) TestGetByIDNotFound() {
	exercise, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(exercise)
}

// TestListByOrganization tests that exercises come back newest first
func (suite *ExerciseRepositoryTestSuite) TestListByOrganization() {
	org := suite.createOrganization()

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"Oldest", "Middle", "Newest"} {
		exercise := suite.factories.Exercise.Create(org.ID)
		exercise.Name = name
		exercise.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		exercise.UpdatedAt = exercise.CreatedAt
		suite.Require().NoError(suite.repo.Create(exercise))
	}

	exercises, err := suite.repo.ListByOrganization(org.ID)

	suite.NoError(err)
	suite.Len(exercises, 3)
	suite.Equal("Newest", exercises[0].Name)
	suite.Equal("Middle", exercises[1].Name)
	suite.Equal("Oldest", exercises[2].Name)
}

// TestListByOrganizationScoping tests that another organization's exercises do not leak
func (suite *ExerciseRepositoryTestSuite) TestListByOrganizationScoping() {
	org := suite.createOrganization()
	otherOrg := suite.createOrganization()

	mine := suite.factories.Exercise.Create(org.ID)
	suite.Require().NoError(suite.repo.Create(mine))
	foreign := suite.factories.Exercise.Create(otherOrg.ID)
	suite.Require().NoError(suite.repo.Create(foreign))

	exercises, err := suite.repo.ListByOrganization(org.ID)

	suite.NoError(err)
	suite.Len(exercises, 1)
	suite.Equal(mine.ID, exercises[0].ID)
}

// TestUpdateStatus tests transitioning an exercise's status
func (suite *ExerciseRepositoryTestSuite) TestUpdateStatus() {
	org := suite.createOrganization()
	exercise := suite.factories.Exercise.Create(org.ID)
	suite.Require().NoError(suite.repo.Create(exercise))

	err := suite.repo.UpdateStatus(exercise.ID, models.ExerciseStatusCompleted)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(exercise.ID)
	suite.NoError(err)
	suite.Equal(models.ExerciseStatusCompleted, retrieved.Status)
}

// TestExerciseRepositoryTestSuite runs the test suite
func TestExerciseRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ExerciseRepositoryTestSuite))
}
