package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"new-arrivals-chi/internal/auth"
	"new-arrivals-chi/internal/database/models"
	apperrors "new-arrivals-chi/internal/errors"
	"new-arrivals-chi/internal/mocks"
	"new-arrivals-chi/internal/service"
	"new-arrivals-chi/internal/testutils"

	"github.com/google/uuid"
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
	user                    *models.User
	profile                 *service.OrganizationProfile
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrganizationService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.user = newTestUser(models.UserRoleStandard)

	locationID := uuid.New()
	hours := service.GroupHours([]models.Hours{
		{DayOfWeek: models.Monday, OpeningTime: "09:00", ClosingTime: "17:00"},
	})
	suite.profile = &service.OrganizationProfile{
		ID:         *suite.user.OrganizationID,
		Name:       "Uptown Community Pantry",
		Phone:      "3125550100",
		Status:     models.OrganizationStatusActive,
		LocationID: &locationID,
		Languages:  []string{"English", "Spanish"},
		Hours:      hours,
		LocationProfile: service.LocationProfile{
			StreetAddress: "4400 N Broadway",
			City:          "Chicago",
			State:         "IL",
			ZipCode:       "60640",
			Neighborhood:  "Uptown",
		},
	}

	suite.handler = NewOrganizationHandler(suite.mockOrganizationService)
	suite.httpSuite = setupPageTest(suite.T(), func() *models.User { return suite.user })

	r := suite.httpSuite.Router
	r.GET("/dashboard", suite.handler.Dashboard)
	r.POST("/dashboard/registration", suite.handler.SaveRegistration)
	r.POST("/dashboard/languages", suite.handler.SaveLanguages)
	r.POST("/dashboard/services", suite.handler.AddService)
	r.GET("/org/:id", suite.handler.Profile)
	r.POST("/org/:id/status", suite.handler.ToggleStatus)
	r.GET("/add_organization", suite.handler.AddOrganizationPage)
	r.POST("/add_organization", suite.handler.AddOrganization)
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationHandlerTestSuite) TestDashboard() {
	suite.mockOrganizationService.EXPECT().GetProfileForUser(suite.user.ID).Return(suite.profile, nil)
	suite.mockOrganizationService.EXPECT().ListLanguages().Return([]string{"English", "Polish", "Spanish"}, nil)
	suite.mockOrganizationService.EXPECT().ListNeighborhoods().Return([]string{"Pilsen", "Uptown"})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/dashboard", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	suite.Contains(body, "Uptown Community Pantry")
	suite.Contains(body, `<option value="Uptown" selected>`)
	suite.Contains(body, `value="Spanish" checked`)
	suite.NotContains(body, `value="Polish" checked`)
	suite.Contains(body, "09:00 - 17:00")
	suite.Contains(body, fmt.Sprintf(`name="location_id" value="%s"`, suite.profile.LocationID))
	suite.NotContains(body, `href="/add_organization?lang=en"`)
}

func (suite *OrganizationHandlerTestSuite) TestDashboardWithoutOrganization() {
	suite.mockOrganizationService.EXPECT().GetProfileForUser(suite.user.ID).Return(nil, apperrors.ErrUserHasNoOrganization)
	suite.mockOrganizationService.EXPECT().ListLanguages().Return(nil, nil)
	suite.mockOrganizationService.EXPECT().ListNeighborhoods().Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/dashboard", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "Your account is not linked to an organization yet.")
}

func (suite *OrganizationHandlerTestSuite) TestDashboardAdminLink() {
	suite.user.Role = models.UserRoleAdmin
	suite.mockOrganizationService.EXPECT().GetProfileForUser(suite.user.ID).Return(nil, apperrors.ErrUserHasNoOrganization)
	suite.mockOrganizationService.EXPECT().ListLanguages().Return(nil, nil)
	suite.mockOrganizationService.EXPECT().ListNeighborhoods().Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/dashboard", nil)

	suite.Contains(recorder.Body.String(), `href="/add_organization?lang=en"`)
}

func (suite *OrganizationHandlerTestSuite) TestDashboardAnonymous() {
	suite.user = nil

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/dashboard", nil)

	testutils.AssertRedirect(suite.T(), recorder, auth.LoginPath)
}

func registrationForm() url.Values {
	form := url.Values{
		"street_address": {"4400 N Broadway"},
		"city":           {"Chicago"},
		"state":          {"IL"},
		"zip_code":       {"60640"},
		"neighborhood":   {"Uptown"},
	}
	for day := 1; day <= 7; day++ {
		form.Add("day_of_week", fmt.Sprint(day))
		switch day {
		case 1:
			form.Add("opening_time", "09:00")
			form.Add("closing_time", "17:00")
		case 3:
			form.Add("opening_time", "10:00")
			form.Add("closing_time", "14:00")
		default:
			form.Add("opening_time", "")
			form.Add("closing_time", "")
		}
	}
	return form
}

func (suite *OrganizationHandlerTestSuite) TestSaveRegistration() {
	suite.mockOrganizationService.EXPECT().
		Register(suite.user.ID, &service.RegistrationRequest{
			Location: service.LocationRequest{
				StreetAddress: "4400 N Broadway",
				ZipCode:       "60640",
				City:          "Chicago",
				State:         "IL",
				Neighborhood:  "Uptown",
			},
			Hours: []service.HoursRequest{
				{DayOfWeek: 1, OpeningTime: "09:00", ClosingTime: "17:00"},
				{DayOfWeek: 3, OpeningTime: "10:00", ClosingTime: "14:00"},
			},
		}).
		Return(nil)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/dashboard/registration", registrationForm())

	testutils.AssertRedirect(suite.T(), recorder, DashboardPath)
	suite.Equal("flash_registration_saved", flashOf(recorder))
}

func (suite *OrganizationHandlerTestSuite) TestSaveRegistrationFailures() {
	testCases := []struct {
		name  string
		err   error
		flash string
	}{
		{"unknown neighborhood", apperrors.ErrUnknownNeighborhood, "flash_unknown_neighborhood"},
		{"bad time", apperrors.ErrInvalidTime, "flash_invalid_hours"},
		{"closing before opening", apperrors.NewValidationError("hours", "closing time must be after opening time"), "flash_invalid_hours"},
		{"bad zip", apperrors.NewValidationError("zipcode", "failed on the 'zipcode' rule"), "flash_invalid_form"},
		{"no organization", apperrors.ErrUserHasNoOrganization, "flash_no_organization"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockOrganizationService.EXPECT().Register(suite.user.ID, gomock.Any()).Return(tc.err)

			recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/dashboard/registration", registrationForm())

			testutils.AssertRedirect(suite.T(), recorder, DashboardPath)
			suite.Equal(tc.flash, flashOf(recorder))
		})
	}
}

func (suite *OrganizationHandlerTestSuite) TestSaveRegistrationMalformedHours() {
	form := registrationForm()
	form.Set("day_of_week", "x")
	form.Add("opening_time", "12:00")

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/dashboard/registration", form)

	testutils.AssertRedirect(suite.T(), recorder, DashboardPath)
	suite.Equal("flash_invalid_hours", flashOf(recorder))
}

func (suite *OrganizationHandlerTestSuite) TestSaveLanguages() {
	suite.mockOrganizationService.EXPECT().
		SetLanguages(suite.user.ID, []string{"English", "Spanish", "Polish", " Arabic", "Urdu"}).
		Return(nil)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/dashboard/languages", url.Values{
		"language":        {"English", "Spanish"},
		"other_languages": {"Polish, Arabic\r\nUrdu"},
	})

	testutils.AssertRedirect(suite.T(), recorder, DashboardPath)
	suite.Equal("flash_languages_saved", flashOf(recorder))
}

func (suite *OrganizationHandlerTestSuite) TestAddService() {
	locationID := uuid.New()
	suite.mockOrganizationService.EXPECT().
		AddService(suite.user.ID, &service.ServiceRequest{
			Category:    "food",
			Service:     "Weekly pantry",
			Access:      "Walk in",
			ServiceNote: "Bring a bag",
			Dates: []service.ServiceDateRequest{
				{Date: "2026-11-02", StartTime: "10:00", EndTime: "12:00", Repeat: "every week"},
			},
			LocationIDs: []uuid.UUID{locationID},
		}).
		Return(&models.Service{}, nil)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/dashboard/services", url.Values{
		"category":     {"food"},
		"service":      {"Weekly pantry"},
		"access":       {"Walk in"},
		"service_note": {"Bring a bag"},
		"date":         {"2026-11-02"},
		"start_time":   {"10:00"},
		"end_time":     {"12:00"},
		"repeat":       {"every week"},
		"location_id":  {locationID.String()},
	})

	testutils.AssertRedirect(suite.T(), recorder, DashboardPath)
	suite.Equal("flash_service_added", flashOf(recorder))
}

func (suite *OrganizationHandlerTestSuite) TestAddServiceWithoutDate() {
	suite.mockOrganizationService.EXPECT().
		AddService(suite.user.ID, &service.ServiceRequest{Category: "legal", Service: "Clinic"}).
		Return(nil, apperrors.NewValidationError("category", "failed on the 'oneof' rule"))

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/dashboard/services", url.Values{
		"category": {"legal"},
		"service":  {"Clinic"},
	})

	testutils.AssertRedirect(suite.T(), recorder, DashboardPath)
	suite.Equal("flash_invalid_form", flashOf(recorder))
}

func (suite *OrganizationHandlerTestSuite) TestAddServiceBadLocationID() {
	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/dashboard/services", url.Values{
		"location_id": {"not-a-uuid"},
	})

	testutils.AssertRedirect(suite.T(), recorder, DashboardPath)
	suite.Equal("flash_invalid_form", flashOf(recorder))
}

func (suite *OrganizationHandlerTestSuite) TestProfile() {
	suite.user = nil
	suite.mockOrganizationService.EXPECT().GetPublicProfile(suite.profile.ID, nil).Return(suite.profile, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/org/"+suite.profile.ID.String(), nil)

	suite.Equal(http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	suite.Contains(body, "Uptown Community Pantry")
	suite.Contains(body, "4400 N Broadway")
	suite.NotContains(body, "/status")
}

func (suite *OrganizationHandlerTestSuite) TestProfileAdminCanToggle() {
	suite.user.Role = models.UserRoleAdmin
	suite.mockOrganizationService.EXPECT().GetPublicProfile(suite.profile.ID, suite.user).Return(suite.profile, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/org/"+suite.profile.ID.String(), nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "/org/"+suite.profile.ID.String()+"/status")
}

func (suite *OrganizationHandlerTestSuite) TestProfileNotFound() {
	hidden := uuid.New()
	missing := uuid.New()
	suite.mockOrganizationService.EXPECT().GetPublicProfile(hidden, gomock.Any()).Return(nil, apperrors.ErrOrganizationNotVisible)
	suite.mockOrganizationService.EXPECT().GetPublicProfile(missing, gomock.Any()).Return(nil, apperrors.ErrOrganizationNotFound)

	for _, path := range []string{"/org/" + hidden.String(), "/org/" + missing.String(), "/org/not-a-uuid"} {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, path, nil)
		suite.Equal(http.StatusNotFound, recorder.Code, path)
		suite.Contains(recorder.Body.String(), "Page not found", path)
	}
}

func (suite *OrganizationHandlerTestSuite) TestAddOrganization() {
	suite.user.Role = models.UserRoleAdmin
	suite.mockOrganizationService.EXPECT().
		AddOrganization(suite.user.ID, &service.AddOrganizationRequest{
			Email: "new@pantry.org",
			Name:  "Pilsen Pantry",
			Phone: "312-555-0101",
		}).
		Return(&models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}}, nil)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/add_organization", url.Values{
		"email": {"new@pantry.org"},
		"name":  {"Pilsen Pantry"},
		"phone": {"312-555-0101"},
	})

	testutils.AssertRedirect(suite.T(), recorder, "/add_organization")
	suite.Equal("flash_organization_added", flashOf(recorder))
}

func (suite *OrganizationHandlerTestSuite) TestAddOrganizationFailures() {
	suite.user.Role = models.UserRoleAdmin
	testCases := []struct {
		name  string
		org   *models.Organization
		err   error
		flash string
	}{
		{"invalid email", nil, apperrors.ErrInvalidEmail, "flash_invalid_email"},
		{"invalid phone", nil, apperrors.ErrInvalidPhone, "flash_invalid_phone"},
		{"missing name", nil, apperrors.ErrMissingOrganizationFields, "flash_missing_name"},
		{"duplicate", nil, apperrors.ErrUserExists, "flash_email_exists"},
		{"mail failed", &models.Organization{}, errors.New("smtp: 421"), "flash_organization_mail_failed"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockOrganizationService.EXPECT().AddOrganization(suite.user.ID, gomock.Any()).Return(tc.org, tc.err)

			recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/add_organization", url.Values{})

			testutils.AssertRedirect(suite.T(), recorder, "/add_organization")
			suite.Equal(tc.flash, flashOf(recorder))
		})
	}
}

func (suite *OrganizationHandlerTestSuite) TestAddOrganizationNotAdmin() {
	suite.mockOrganizationService.EXPECT().AddOrganization(suite.user.ID, gomock.Any()).Return(nil, apperrors.ErrAdminRequired)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/add_organization", url.Values{})

	suite.Equal(http.StatusForbidden, recorder.Code)
}

func (suite *OrganizationHandlerTestSuite) TestToggleStatus() {
	suite.user.Role = models.UserRoleAdmin
	orgID := uuid.New()
	suite.mockOrganizationService.EXPECT().ToggleStatus(orgID, suite.user.ID).Return(models.OrganizationStatusSuspended, nil)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/org/"+orgID.String()+"/status", url.Values{})

	testutils.AssertRedirect(suite.T(), recorder, "/org/"+orgID.String())
	suite.Equal("flash_status_changed", flashOf(recorder))
}

func (suite *OrganizationHandlerTestSuite) TestToggleStatusNotFound() {
	orgID := uuid.New()
	suite.mockOrganizationService.EXPECT().ToggleStatus(orgID, suite.user.ID).Return(models.OrganizationStatus(""), apperrors.ErrOrganizationNotFound)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/org/"+orgID.String()+"/status", url.Values{})

	suite.Equal(http.StatusNotFound, recorder.Code)
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
