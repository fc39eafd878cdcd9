package handlers

import (
	"net/http"
	"testing"

	apperrors "training-portal-backend/internal/errors"
	"training-portal-backend/internal/mocks"
	"training-portal-backend/internal/service"
	"training-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LevelHandlerTestSuite defines the test suite for LevelHandler
type LevelHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockLevelService *mocks.MockLevelServiceInterface
	handler          *LevelHandler
	httpSuite        *testutils.HTTPTestSuite
	userID           uuid.UUID
}

// SetupTest sets up the test suite
func (suite *LevelHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLevelService = mocks.NewMockLevelServiceInterface(suite.ctrl)
	suite.userID = uuid.New()

	suite.handler = NewLevelHandler(suite.mockLevelService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1", testutils.AuthenticateAs(suite.userID))
	{
		v1.POST("/levels", suite.handler.CreateLevel)
		v1.GET("/levels/:id", suite.handler.GetLevel)
		v1.PATCH("/levels/:id/parent", suite.handler.UpdateLevelParent)
		v1.GET("/organizations/:id/levels", suite.handler.ListLevels)
		v1.GET("/organizations/:id/levels/roots", suite.handler.ListRootLevels)
	}
}

// TearDownTest cleans up after each test
func (suite *LevelHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateLevel tests creating a level
func (suite *LevelHandlerTestSuite) TestCreateLevel() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{
		"name":            "Engineering",
		"organization_id": orgID.String(),
	}

	expectedResponse := &service.LevelResponse{
		ID:             uuid.New(),
		Name:           "Engineering",
		OrganizationID: orgID,
	}

	suite.mockLevelService.EXPECT().
		Create(suite.userID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/levels", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.LevelResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Engineering", response.Name)
}

// TestCreateLevelInvalidParent tests creating a level under an invalid parent
func (suite *LevelHandlerTestSuite) TestCreateLevelInvalidParent() {
	requestBody := map[string]interface{}{
		"name":            "Backend Team",
		"organization_id": uuid.New().String(),
		"parent_id":       uuid.New().String(),
	}

	suite.mockLevelService.EXPECT().
		Create(suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrInvalidParent).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/levels", requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestCreateLevelForbidden tests creating a level without the ADMIN role
func (suite *LevelHandlerTestSuite) TestCreateLevelForbidden() {
	requestBody := map[string]interface{}{
		"name":            "Engineering",
		"organization_id": uuid.New().String(),
	}

	suite.mockLevelService.EXPECT().
		Create(suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrInsufficientRole).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/levels", requestBody)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestGetLevel tests reading a level with its relations
func (suite *LevelHandlerTestSuite) TestGetLevel() {
	levelID := uuid.New()
	orgID := uuid.New()

	expectedResponse := &service.LevelDetailResponse{
		LevelResponse: service.LevelResponse{
			ID:             levelID,
			Name:           "Engineering",
			OrganizationID: orgID,
		},
		Children: []service.LevelResponse{
			{ID: uuid.New(), Name: "Backend Team", OrganizationID: orgID},
		},
		Organization: service.OrganizationResponse{ID: orgID, Name: "Test Organization"},
	}

	suite.mockLevelService.EXPECT().
		GetWithRelations(suite.userID, levelID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/levels/"+levelID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.LevelDetailResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Engineering", response.Name)
	assert.Len(suite.T(), response.Children, 1)
}

// TestGetLevelNotFound tests reading a level that does not exist
func (suite *LevelHandlerTestSuite) TestGetLevelNotFound() {
	levelID := uuid.New()

	suite.mockLevelService.EXPECT().
		GetWithRelations(suite.userID, levelID).
		Return(nil, apperrors.ErrLevelNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/levels/"+levelID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestGetLevelInvalidID tests an unparseable level id
func (suite *LevelHandlerTestSuite) TestGetLevelInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/levels/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid level ID")
}

// TestListLevels tests listing the full flat level list of an organization
func (suite *LevelHandlerTestSuite) TestListLevels() {
	orgID := uuid.New()

	expectedResponse := []service.LevelResponse{
		{ID: uuid.New(), Name: "Engineering", OrganizationID: orgID},
		{ID: uuid.New(), Name: "Sales", OrganizationID: orgID},
	}

	suite.mockLevelService.EXPECT().
		ListByOrganization(suite.userID, orgID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+orgID.String()+"/levels", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.LevelResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
}

// TestListRootLevels tests listing only root levels
func (suite *LevelHandlerTestSuite) TestListRootLevels() {
	orgID := uuid.New()

	expectedResponse := []service.LevelResponse{
		{ID: uuid.New(), Name: "Engineering", OrganizationID: orgID},
	}

	suite.mockLevelService.EXPECT().
		ListRoots(suite.userID, orgID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+orgID.String()+"/levels/roots", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.LevelResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
}

// TestListLevelsForbidden tests the denial for a non-member
func (suite *LevelHandlerTestSuite) TestListLevelsForbidden() {
	orgID := uuid.New()

	suite.mockLevelService.EXPECT().
		ListByOrganization(suite.userID, orgID).
		Return(nil, apperrors.ErrNotAMember).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+orgID.String()+"/levels", nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestUpdateLevelParent tests moving a level
func (suite *LevelHandlerTestSuite) TestUpdateLevelParent() {
	levelID := uuid.New()
	parentID := uuid.New()

	requestBody := map[string]interface{}{
		"parent_id": parentID.String(),
	}

	expectedResponse := &service.LevelResponse{
		ID:       levelID,
		Name:     "Backend Team",
		ParentID: &parentID,
	}

	suite.mockLevelService.EXPECT().
		UpdateParent(suite.userID, levelID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/levels/"+levelID.String()+"/parent", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.LevelResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), parentID, *response.ParentID)
}

// TestUpdateLevelParentCycle tests that a cycle-creating move is a bad request
func (suite *LevelHandlerTestSuite) TestUpdateLevelParentCycle() {
	levelID := uuid.New()

	requestBody := map[string]interface{}{
		"parent_id": uuid.New().String(),
	}

	suite.mockLevelService.EXPECT().
		UpdateParent(suite.userID, levelID, gomock.Any()).
		Return(nil, apperrors.ErrLevelCycle).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/levels/"+levelID.String()+"/parent", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "ancestor")
}

// TestLevelHandlerTestSuite runs the test suite
func TestLevelHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LevelHandlerTestSuite))
}
