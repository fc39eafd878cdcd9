package service_test

import (
	"testing"
	"time"

	"training-portal-backend/internal/database/models"
	apperrors "training-portal-backend/internal/errors"
	"training-portal-backend/internal/mocks"
	"training-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// OrganizationServiceTestSuite defines the test suite for OrganizationService
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockOrgRepo         *mocks.MockOrganizationRepositoryInterface
	mockMembershipRepo  *mocks.MockMembershipRepositoryInterface
	mockUserRepo        *mocks.MockUserRepositoryInterface
	mockAuthorizer      *mocks.MockAuthorizationServiceInterface
	organizationService *service.OrganizationService
	validator           *validator.Validate
}

// SetupTest sets up the test suite
func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockAuthorizer = mocks.NewMockAuthorizationServiceInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.organizationService = service.NewOrganizationService(
		suite.mockOrgRepo,
		suite.mockMembershipRepo,
		suite.mockUserRepo,
		suite.mockAuthorizer,
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrganization tests creating an organization
func (suite *OrganizationServiceTestSuite) TestCreateOrganization() {
	ownerID := uuid.New()
	req := &service.CreateOrganizationRequest{
		Name: "Test Organization",
	}

	owner := &models.User{
		BaseModel: models.BaseModel{ID: ownerID},
		Email:     "owner@test.com",
	}

	suite.mockUserRepo.EXPECT().
		GetByID(ownerID).
		Return(owner, nil).
		Times(1)

	suite.mockOrgRepo.EXPECT().
		CreateWithOwner(gomock.Any(), ownerID).
		DoAndReturn(func(org *models.Organization, id uuid.UUID) error {
			org.ID = uuid.New()
			org.CreatedAt = time.Now()
			org.UpdatedAt = time.Now()
			return nil
		}).
		Times(1)

	response, err := suite.organizationService.Create(ownerID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.Equal(suite.T(), ownerID, response.OwnerID)
}

// TestCreateOrganizationValidationError tests creating an organization with an empty name
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationValidationError() {
	req := &service.CreateOrganizationRequest{
		Name: "", // Empty name should fail validation
	}

	response, err := suite.organizationService.Create(uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateOrganizationUnknownOwner tests creating an organization for an unprovisioned subject
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationUnknownOwner() {
	ownerID := uuid.New()
	req := &service.CreateOrganizationRequest{
		Name: "Test Organization",
	}

	suite.mockUserRepo.EXPECT().
		GetByID(ownerID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.organizationService.Create(ownerID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestListForUser tests listing the caller's organizations
func (suite *OrganizationServiceTestSuite) TestListForUser() {
	userID := uuid.New()
	org1 := models.Organization{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "First Organization",
		OwnerID:   userID,
	}
	org2 := models.Organization{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Second Organization",
		OwnerID:   uuid.New(),
	}

	memberships := []models.OrganizationMember{
		{OrganizationID: org1.ID, UserID: userID, Role: models.MemberRoleAdmin, Organization: org1},
		{OrganizationID: org2.ID, UserID: userID, Role: models.MemberRoleMember, Organization: org2},
	}

	suite.mockMembershipRepo.EXPECT().
		ListForUser(userID).
		Return(memberships, nil).
		Times(1)

	responses, err := suite.organizationService.ListForUser(userID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.Equal(suite.T(), "First Organization", responses[0].Name)
	assert.Equal(suite.T(), "Second Organization", responses[1].Name)
}

// TestListForUserEmpty tests listing organizations for a user without memberships
func (suite *OrganizationServiceTestSuite) TestListForUserEmpty() {
	userID := uuid.New()

	suite.mockMembershipRepo.EXPECT().
		ListForUser(userID).
		Return([]models.OrganizationMember{}, nil).
		Times(1)

	responses, err := suite.organizationService.ListForUser(userID)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), responses)
}

// TestGetDetail tests reading an organization with its levels and the caller's role
func (suite *OrganizationServiceTestSuite) TestGetDetail() {
	userID := uuid.New()
	orgID := uuid.New()

	membership := &models.OrganizationMember{
		OrganizationID: orgID,
		UserID:         userID,
		Role:           models.MemberRoleMember,
	}

	org := &models.Organization{
		BaseModel: models.BaseModel{ID: orgID},
		Name:      "Test Organization",
		OwnerID:   uuid.New(),
		Levels: []models.Level{
			{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Engineering", OrganizationID: orgID},
			{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Sales", OrganizationID: orgID},
		},
	}

	suite.mockAuthorizer.EXPECT().
		Authorize(userID, orgID, models.MemberRoleMember).
		Return(membership, nil).
		Times(1)

	suite.mockOrgRepo.EXPECT().
		GetWithLevels(orgID).
		Return(org, nil).
		Times(1)

	response, err := suite.organizationService.GetDetail(userID, orgID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), org.Name, response.Name)
	assert.Equal(suite.T(), models.MemberRoleMember, response.Role)
	assert.Len(suite.T(), response.Levels, 2)
	assert.Equal(suite.T(), "Engineering", response.Levels[0].Name)
}

// TestGetDetailNotAMember tests that the denial precedes the organization read
func (suite *OrganizationServiceTestSuite) TestGetDetailNotAMember() {
	userID := uuid.New()
	orgID := uuid.New()

	suite.mockAuthorizer.EXPECT().
		Authorize(userID, orgID, models.MemberRoleMember).
		Return(nil, apperrors.ErrNotAMember).
		Times(1)

	response, err := suite.organizationService.GetDetail(userID, orgID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAMember)
}

// TestAddMember tests adding a member as an admin
func (suite *OrganizationServiceTestSuite) TestAddMember() {
	callerID := uuid.New()
	orgID := uuid.New()
	targetID := uuid.New()

	req := &service.AddMemberRequest{
		UserID: targetID,
		Role:   models.MemberRoleMember,
	}

	callerMembership := &models.OrganizationMember{
		OrganizationID: orgID,
		UserID:         callerID,
		Role:           models.MemberRoleAdmin,
	}

	suite.mockAuthorizer.EXPECT().
		Authorize(callerID, orgID, models.MemberRoleAdmin).
		Return(callerMembership, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByID(targetID).
		Return(&models.User{BaseModel: models.BaseModel{ID: targetID}}, nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(m *models.OrganizationMember) error {
			m.ID = uuid.New()
			m.CreatedAt = time.Now()
			return nil
		}).
		Times(1)

	response, err := suite.organizationService.AddMember(callerID, orgID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), targetID, response.UserID)
	assert.Equal(suite.T(), models.MemberRoleMember, response.Role)
}

// TestAddMemberInvalidRole tests that an unknown role string is rejected
func (suite *OrganizationServiceTestSuite) TestAddMemberInvalidRole() {
	req := &service.AddMemberRequest{
		UserID: uuid.New(),
		Role:   models.MemberRole("OWNER"),
	}

	response, err := suite.organizationService.AddMember(uuid.New(), uuid.New(), req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRole)
}

// TestAddMemberInsufficientRole tests that a MEMBER cannot add members
func (suite *OrganizationServiceTestSuite) TestAddMemberInsufficientRole() {
	callerID := uuid.New()
	orgID := uuid.New()

	req := &service.AddMemberRequest{
		UserID: uuid.New(),
		Role:   models.MemberRoleMember,
	}

	suite.mockAuthorizer.EXPECT().
		Authorize(callerID, orgID, models.MemberRoleAdmin).
		Return(nil, apperrors.ErrInsufficientRole).
		Times(1)

	response, err := suite.organizationService.AddMember(callerID, orgID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientRole)
}

// TestAddMemberDuplicate tests that the store's unique constraint surfaces as a conflict
func (suite *OrganizationServiceTestSuite) TestAddMemberDuplicate() {
	callerID := uuid.New()
	orgID := uuid.New()
	targetID := uuid.New()

	req := &service.AddMemberRequest{
		UserID: targetID,
		Role:   models.MemberRoleAdmin,
	}

	suite.mockAuthorizer.EXPECT().
		Authorize(callerID, orgID, models.MemberRoleAdmin).
		Return(&models.OrganizationMember{Role: models.MemberRoleAdmin}, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByID(targetID).
		Return(&models.User{BaseModel: models.BaseModel{ID: targetID}}, nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		Create(gomock.Any()).
		Return(gorm.ErrDuplicatedKey).
		Times(1)

	response, err := suite.organizationService.AddMember(callerID, orgID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipExists)
}

// TestAddMemberUnknownUser tests adding a user that does not exist
func (suite *OrganizationServiceTestSuite) TestAddMemberUnknownUser() {
	callerID := uuid.New()
	orgID := uuid.New()
	targetID := uuid.New()

	req := &service.AddMemberRequest{
		UserID: targetID,
		Role:   models.MemberRoleMember,
	}

	suite.mockAuthorizer.EXPECT().
		Authorize(callerID, orgID, models.MemberRoleAdmin).
		Return(&models.OrganizationMember{Role: models.MemberRoleAdmin}, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByID(targetID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.organizationService.AddMember(callerID, orgID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestOrganizationServiceTestSuite runs the test suite
func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
