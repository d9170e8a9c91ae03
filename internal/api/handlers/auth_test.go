package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"new-arrivals-chi/internal/auth"
	"new-arrivals-chi/internal/database/models"
	apperrors "new-arrivals-chi/internal/errors"
	"new-arrivals-chi/internal/mocks"
	"new-arrivals-chi/internal/service"
	"new-arrivals-chi/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAccountService *mocks.MockAccountServiceInterface
	recorder           *fakeRecorder
	handler            *AuthHandler
	httpSuite          *testutils.HTTPTestSuite
	user               *models.User
	loggedIn           bool
}

// SetupTest sets up the test suite
func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAccountService = mocks.NewMockAccountServiceInterface(suite.ctrl)
	suite.recorder = &fakeRecorder{}
	suite.user = newTestUser(models.UserRoleStandard)
	suite.loggedIn = false

	suite.handler = NewAuthHandler(suite.mockAccountService, newTestSessions(suite.T()), suite.recorder)

	suite.httpSuite = setupPageTest(suite.T(), func() *models.User {
		if suite.loggedIn {
			return suite.user
		}
		return nil
	})

	r := suite.httpSuite.Router
	r.GET("/signup", suite.handler.SignupPage)
	r.POST("/signup", suite.handler.Signup)
	r.GET("/login", suite.handler.LoginPage)
	r.POST("/login", suite.handler.Login)
	r.GET("/logout", suite.handler.Logout)
	r.GET("/change_password", suite.handler.ChangePasswordPage)
	r.POST("/change_password", suite.handler.ChangePassword)
	r.GET("/registration_change_password", suite.handler.RegistrationChangePasswordPage)
	r.POST("/registration_change_password", suite.handler.RegistrationChangePassword)
}

// TearDownTest cleans up after each test
func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthHandlerTestSuite) TestPagesRender() {
	for path, field := range map[string]string{
		"/signup":                       `name="password_confirm"`,
		"/login":                        `name="remember"`,
		"/registration_change_password": `name="old_password"`,
	} {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, path, nil)
		assert.Equal(suite.T(), http.StatusOK, recorder.Code, path)
		assert.Contains(suite.T(), recorder.Body.String(), field, path)
	}
}

func (suite *AuthHandlerTestSuite) TestLoginPageKeepsSafeNext() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/login?next=%2Fdashboard", nil)
	assert.Contains(suite.T(), recorder.Body.String(), `name="next" value="/dashboard"`)

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/login?next=%2F%2Fevil.example.com", nil)
	assert.NotContains(suite.T(), recorder.Body.String(), `name="next"`)
}

func (suite *AuthHandlerTestSuite) TestSignupSuccess() {
	suite.mockAccountService.EXPECT().
		Signup(&service.SignupRequest{
			Email:           "new@example.org",
			Password:        "Str0ng!Pass",
			PasswordConfirm: "Str0ng!Pass",
		}).
		Return(suite.user, nil)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/signup", url.Values{
		"email":            {"new@example.org"},
		"password":         {"Str0ng!Pass"},
		"password_confirm": {"Str0ng!Pass"},
	})

	testutils.AssertRedirect(suite.T(), recorder, DashboardPath)
	session := testutils.ResponseCookie(recorder, auth.SessionCookieName)
	suite.Require().NotNil(session)
	assert.NotEmpty(suite.T(), session.Value)
	assert.Equal(suite.T(), 0, session.MaxAge)
	assert.Equal(suite.T(), []string{"signup:success"}, suite.recorder.events)
}

func (suite *AuthHandlerTestSuite) TestSignupFailures() {
	testCases := []struct {
		name  string
		err   error
		flash string
	}{
		{"invalid email", apperrors.ErrInvalidEmail, "flash_invalid_email"},
		{"duplicate email", apperrors.ErrUserExists, "flash_email_exists"},
		{"mismatch", apperrors.ErrPasswordMismatch, "flash_password_mismatch"},
		{"weak password", apperrors.ErrWeakPassword, "flash_weak_password"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockAccountService.EXPECT().Signup(gomock.Any()).Return(nil, tc.err)

			recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/signup", url.Values{"email": {"x"}})

			testutils.AssertRedirect(suite.T(), recorder, "/signup")
			assert.Equal(suite.T(), tc.flash, flashOf(recorder))
			assert.Nil(suite.T(), testutils.ResponseCookie(recorder, auth.SessionCookieName))
		})
	}
}

func (suite *AuthHandlerTestSuite) TestSignupUnexpectedError() {
	suite.mockAccountService.EXPECT().Signup(gomock.Any()).Return(nil, errors.New("db down"))

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/signup", url.Values{})

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "Something went wrong")
}

func (suite *AuthHandlerTestSuite) TestFlashIsShownOnNextPage() {
	suite.mockAccountService.EXPECT().Signup(gomock.Any()).Return(nil, apperrors.ErrUserExists)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/signup", url.Values{})
	flash := testutils.ResponseCookie(recorder, "flash")
	suite.Require().NotNil(flash)

	page := suite.httpSuite.MakeRequestWithCookies(http.MethodGet, "/signup", flash)
	assert.Contains(suite.T(), page.Body.String(), "Email address already exists for user")
}

func (suite *AuthHandlerTestSuite) TestLoginSuccessWithRemember() {
	suite.mockAccountService.EXPECT().Authenticate("manager@example.org", "Str0ng!Pass").Return(suite.user, nil)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/login", url.Values{
		"email":    {"manager@example.org"},
		"password": {"Str0ng!Pass"},
		"remember": {"true"},
	})

	testutils.AssertRedirect(suite.T(), recorder, DashboardPath)
	session := testutils.ResponseCookie(recorder, auth.SessionCookieName)
	suite.Require().NotNil(session)
	assert.Greater(suite.T(), session.MaxAge, 0)
	assert.Equal(suite.T(), []string{"login:success"}, suite.recorder.events)
}

func (suite *AuthHandlerTestSuite) TestLoginFollowsNext() {
	suite.mockAccountService.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(suite.user, nil).Times(2)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/login", url.Values{"next": {"/change_password"}})
	assert.Equal(suite.T(), "/change_password", recorder.Header().Get("Location"))

	recorder = suite.httpSuite.MakeFormRequest(http.MethodPost, "/login", url.Values{"next": {"//evil.example.com"}})
	testutils.AssertRedirect(suite.T(), recorder, DashboardPath)
}

func (suite *AuthHandlerTestSuite) TestLoginBadCredentials() {
	suite.mockAccountService.EXPECT().Authenticate("manager@example.org", "wrong").Return(nil, apperrors.ErrInvalidCredentials)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/login", url.Values{
		"email":    {"manager@example.org"},
		"password": {"wrong"},
		"next":     {"/dashboard"},
	})

	testutils.AssertRedirect(suite.T(), recorder, "/login")
	location, _ := url.Parse(recorder.Header().Get("Location"))
	assert.Equal(suite.T(), "/dashboard", location.Query().Get("next"))
	assert.Equal(suite.T(), "flash_bad_login", flashOf(recorder))
	assert.Nil(suite.T(), testutils.ResponseCookie(recorder, auth.SessionCookieName))
	assert.Equal(suite.T(), []string{"login:failure"}, suite.recorder.events)
}

func (suite *AuthHandlerTestSuite) TestLogout() {
	suite.loggedIn = true

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/logout?lang=es", nil)

	testutils.AssertRedirect(suite.T(), recorder, HomePath)
	location, _ := url.Parse(recorder.Header().Get("Location"))
	assert.Equal(suite.T(), "es", location.Query().Get("lang"))
	session := testutils.ResponseCookie(recorder, auth.SessionCookieName)
	suite.Require().NotNil(session)
	assert.Less(suite.T(), session.MaxAge, 0)
}

func (suite *AuthHandlerTestSuite) TestChangePasswordSuccess() {
	suite.loggedIn = true
	req := &service.ChangePasswordRequest{
		OldPassword:        "Str0ng!Pass",
		NewPassword:        "An0ther#Pass",
		NewPasswordConfirm: "An0ther#Pass",
	}
	gomock.InOrder(
		suite.mockAccountService.EXPECT().ChangePassword(suite.user.ID, req).Return(nil),
		suite.mockAccountService.EXPECT().GetUser(suite.user.ID).Return(suite.user, nil),
	)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/change_password", url.Values{
		"old_password":         {"Str0ng!Pass"},
		"new_password":         {"An0ther#Pass"},
		"new_password_confirm": {"An0ther#Pass"},
	})

	testutils.AssertRedirect(suite.T(), recorder, DashboardPath)
	assert.Equal(suite.T(), "flash_password_changed", flashOf(recorder))
	assert.NotNil(suite.T(), testutils.ResponseCookie(recorder, auth.SessionCookieName))
}

func (suite *AuthHandlerTestSuite) TestChangePasswordFailures() {
	suite.loggedIn = true
	testCases := []struct {
		name  string
		err   error
		flash string
	}{
		{"wrong existing password", apperrors.ErrWrongPassword, "flash_wrong_password"},
		{"reuse", apperrors.ErrPasswordReused, "flash_password_reused"},
		{"mismatch", apperrors.ErrPasswordMismatch, "flash_new_password_mismatch"},
		{"weak", apperrors.ErrWeakPassword, "flash_weak_new_password"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockAccountService.EXPECT().ChangePassword(suite.user.ID, gomock.Any()).Return(tc.err)

			recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/change_password", url.Values{})

			testutils.AssertRedirect(suite.T(), recorder, "/change_password")
			assert.Equal(suite.T(), tc.flash, flashOf(recorder))
		})
	}
}

func (suite *AuthHandlerTestSuite) TestChangePasswordAnonymous() {
	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/change_password", url.Values{})

	testutils.AssertRedirect(suite.T(), recorder, auth.LoginPath)
}

func (suite *AuthHandlerTestSuite) TestRegistrationChangePassword() {
	suite.mockAccountService.EXPECT().
		RegistrationChangePassword(&service.RegistrationChangePasswordRequest{
			Email:              "manager@example.org",
			TemporaryPassword:  "Tmp!Pass12345a",
			NewPassword:        "An0ther#Pass",
			NewPasswordConfirm: "An0ther#Pass",
		}).
		Return(nil)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/registration_change_password", url.Values{
		"email":                {"manager@example.org"},
		"old_password":         {"Tmp!Pass12345a"},
		"new_password":         {"An0ther#Pass"},
		"new_password_confirm": {"An0ther#Pass"},
	})

	testutils.AssertRedirect(suite.T(), recorder, auth.LoginPath)
	assert.Equal(suite.T(), "flash_password_changed", flashOf(recorder))
	assert.Equal(suite.T(), []string{"registration_change_password:success"}, suite.recorder.events)
}

func (suite *AuthHandlerTestSuite) TestRegistrationChangePasswordBadCredentials() {
	suite.mockAccountService.EXPECT().RegistrationChangePassword(gomock.Any()).Return(apperrors.ErrInvalidRegistrationCredentials)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/registration_change_password", url.Values{})

	testutils.AssertRedirect(suite.T(), recorder, "/registration_change_password")
	assert.Equal(suite.T(), "flash_bad_registration", flashOf(recorder))
}

func (suite *AuthHandlerTestSuite) TestRegistrationChangePasswordInvalidEmail() {
	suite.mockAccountService.EXPECT().RegistrationChangePassword(gomock.Any()).Return(apperrors.ErrInvalidEmail)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/registration_change_password", url.Values{"email": {"not-an-email"}})

	testutils.AssertRedirect(suite.T(), recorder, "/registration_change_password")
	assert.Equal(suite.T(), "flash_invalid_email", flashOf(recorder))
}

// TestAuthHandlerTestSuite runs the test suite
func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
