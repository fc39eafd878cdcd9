package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"training-portal-backend/internal/database/models"
	apperrors "training-portal-backend/internal/errors"
	"training-portal-backend/internal/mocks"
	"training-portal-backend/internal/service"
	"training-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockOrganizationService *mocks.MockOrganizationServiceInterface
	handler                 *OrganizationHandler
	httpSuite               *testutils.HTTPTestSuite
	userID                  uuid.UUID
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrganizationService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.userID = uuid.New()

	suite.handler = NewOrganizationHandler(suite.mockOrganizationService)

	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes behind a stand-in for the bearer middleware
	v1 := suite.httpSuite.Router.Group("/api/v1", testutils.AuthenticateAs(suite.userID))
	orgs := v1.Group("/organizations")
	{
		orgs.GET("", suite.handler.ListOrganizations)
		orgs.POST("", suite.handler.CreateOrganization)
		orgs.GET("/:id", suite.handler.GetOrganization)
		orgs.POST("/:id/members", suite.handler.AddMember)
	}
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrganization tests creating an organization
func (suite *OrganizationHandlerTestSuite) TestCreateOrganization() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{
		"name": "Test Organization",
	}

	expectedResponse := &service.OrganizationResponse{
		ID:        orgID,
		Name:      "Test Organization",
		OwnerID:   suite.userID,
		CreatedAt: "2023-01-01T00:00:00Z",
		UpdatedAt: "2023-01-01T00:00:00Z",
	}

	suite.mockOrganizationService.EXPECT().
		Create(suite.userID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expectedResponse.Name, response.Name)
	assert.Equal(suite.T(), suite.userID, response.OwnerID)
}

// TestCreateOrganizationUnknownUser tests creating as a subject the store has never seen
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationUnknownUser() {
	requestBody := map[string]interface{}{
		"name": "Test Organization",
	}

	suite.mockOrganizationService.EXPECT().
		Create(suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrUserNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Unknown user")
}

// TestCreateOrganizationServiceError tests creating an organization with service error
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationServiceError() {
	requestBody := map[string]interface{}{
		"name": "Test Organization",
	}

	suite.mockOrganizationService.EXPECT().
		Create(suite.userID, gomock.Any()).
		Return(nil, fmt.Errorf("service error")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to create organization")
}

// TestListOrganizations tests listing the caller's organizations
func (suite *OrganizationHandlerTestSuite) TestListOrganizations() {
	expectedResponse := []service.OrganizationResponse{
		{ID: uuid.New(), Name: "First Organization"},
		{ID: uuid.New(), Name: "Second Organization"},
	}

	suite.mockOrganizationService.EXPECT().
		ListForUser(suite.userID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
}

// TestGetOrganization tests reading an organization's detail view
func (suite *OrganizationHandlerTestSuite) TestGetOrganization() {
	orgID := uuid.New()

	expectedResponse := &service.OrganizationDetailResponse{
		OrganizationResponse: service.OrganizationResponse{
			ID:   orgID,
			Name: "Test Organization",
		},
		Levels: []service.LevelResponse{
			{ID: uuid.New(), Name: "Engineering", OrganizationID: orgID},
		},
		Role: models.MemberRoleAdmin,
	}

	suite.mockOrganizationService.EXPECT().
		GetDetail(suite.userID, orgID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.OrganizationDetailResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), models.MemberRoleAdmin, response.Role)
	assert.Len(suite.T(), response.Levels, 1)
}

// TestGetOrganizationInvalidID tests an unparseable organization id
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid organization ID")
}

// TestGetOrganizationForbidden tests reading an organization as a non-member
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationForbidden() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		GetDetail(suite.userID, orgID).
		Return(nil, apperrors.ErrNotAMember).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestAddMember tests adding a member
func (suite *OrganizationHandlerTestSuite) TestAddMember() {
	orgID := uuid.New()
	targetID := uuid.New()

	requestBody := map[string]interface{}{
		"user_id": targetID.String(),
		"role":    "MEMBER",
	}

	expectedResponse := &service.MembershipResponse{
		ID:             uuid.New(),
		OrganizationID: orgID,
		UserID:         targetID,
		Role:           models.MemberRoleMember,
	}

	suite.mockOrganizationService.EXPECT().
		AddMember(suite.userID, orgID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations/"+orgID.String()+"/members", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.MembershipResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), targetID, response.UserID)
}

// TestAddMemberConflict tests adding a member that already exists
func (suite *OrganizationHandlerTestSuite) TestAddMemberConflict() {
	orgID := uuid.New()

	requestBody := map[string]interface{}{
		"user_id": uuid.New().String(),
		"role":    "MEMBER",
	}

	suite.mockOrganizationService.EXPECT().
		AddMember(suite.userID, orgID, gomock.Any()).
		Return(nil, apperrors.ErrMembershipExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations/"+orgID.String()+"/members", requestBody)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestAddMemberForbidden tests adding a member without the ADMIN role
func (suite *OrganizationHandlerTestSuite) TestAddMemberForbidden() {
	orgID := uuid.New()

	requestBody := map[string]interface{}{
		"user_id": uuid.New().String(),
		"role":    "MEMBER",
	}

	suite.mockOrganizationService.EXPECT().
		AddMember(suite.userID, orgID, gomock.Any()).
		Return(nil, apperrors.ErrInsufficientRole).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations/"+orgID.String()+"/members", requestBody)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestAddMemberInvalidRole tests adding a member with a role outside the closed set
func (suite *OrganizationHandlerTestSuite) TestAddMemberInvalidRole() {
	orgID := uuid.New()

	requestBody := map[string]interface{}{
		"user_id": uuid.New().String(),
		"role":    "OWNER",
	}

	suite.mockOrganizationService.EXPECT().
		AddMember(suite.userID, orgID, gomock.Any()).
		Return(nil, apperrors.ErrInvalidRole).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations/"+orgID.String()+"/members", requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
