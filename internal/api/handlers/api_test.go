package handlers

import (
	"errors"
	"net/http"
	"testing"

	"new-arrivals-chi/internal/database/models"
	apperrors "new-arrivals-chi/internal/errors"
	"new-arrivals-chi/internal/mocks"
	"new-arrivals-chi/internal/service"
	"new-arrivals-chi/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// APIHandlerTestSuite defines the test suite for APIHandler
type APIHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockOrganizationService *mocks.MockOrganizationServiceInterface
	mockDirectoryService    *mocks.MockDirectoryServiceInterface
	handler                 *APIHandler
	httpSuite               *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *APIHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrganizationService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.mockDirectoryService = mocks.NewMockDirectoryServiceInterface(suite.ctrl)
	suite.handler = NewAPIHandler(suite.mockOrganizationService, suite.mockDirectoryService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	{
		v1.GET("/organizations/:id", suite.handler.GetOrganization)
		v1.GET("/services/search", suite.handler.SearchServices)
	}
}

// TearDownTest cleans up after each test
func (suite *APIHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *APIHandlerTestSuite) TestGetOrganization() {
	orgID := uuid.New()
	profile := &service.OrganizationProfile{
		ID:     orgID,
		Name:   "Uptown Clinic",
		Status: models.OrganizationStatusActive,
		Hours: service.GroupHours([]models.Hours{
			{DayOfWeek: models.Tuesday, OpeningTime: "08:00", ClosingTime: "12:00"},
		}),
		LocationProfile: service.LocationProfile{StreetAddress: "4400 N Broadway", Neighborhood: "Uptown"},
	}
	suite.mockOrganizationService.EXPECT().GetPublicProfile(orgID, nil).Return(profile, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations/"+orgID.String(), nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "Uptown Clinic", response["name"])
	assert.Equal(suite.T(), "4400 N Broadway", response["street_address"])
	hours := response["hours"].(map[string]interface{})
	assert.Len(suite.T(), hours, 7)
	assert.Len(suite.T(), hours["tuesday"], 1)
	assert.Empty(suite.T(), hours["monday"])
}

func (suite *APIHandlerTestSuite) TestGetOrganizationErrors() {
	hidden := uuid.New()
	failing := uuid.New()
	suite.mockOrganizationService.EXPECT().GetPublicProfile(hidden, gomock.Any()).Return(nil, apperrors.ErrOrganizationNotVisible)
	suite.mockOrganizationService.EXPECT().GetPublicProfile(failing, gomock.Any()).Return(nil, errors.New("db down"))

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations/invalid", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid organization ID")

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations/"+hidden.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization not found")

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organizations/"+failing.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to get organization")
}

func (suite *APIHandlerTestSuite) TestSearchServices() {
	suite.mockDirectoryService.EXPECT().
		Search(&service.SearchRequest{Category: "food", Language: "Spanish", Page: 2, PageSize: 10}).
		Return(&service.SearchResponse{Total: 12, Page: 2, PageSize: 10}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/services/search?category=food&language=Spanish&page=2&page_size=10", nil)

	var response service.SearchResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), int64(12), response.Total)
	assert.Equal(suite.T(), 2, response.Page)
}

func (suite *APIHandlerTestSuite) TestSearchServicesInvalid() {
	suite.mockDirectoryService.EXPECT().Search(gomock.Any()).Return(nil, apperrors.ErrInvalidPaginationParams)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/services/search?page=-1", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid pagination parameters")

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/services/search?page_size=many", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid query parameters")
}

// TestAPIHandlerTestSuite runs the test suite
func TestAPIHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(APIHandlerTestSuite))
}
