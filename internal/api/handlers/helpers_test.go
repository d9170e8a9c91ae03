package handlers

import (
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"new-arrivals-chi/internal/api/middleware"
	"new-arrivals-chi/internal/auth"
	"new-arrivals-chi/internal/database/models"
	"new-arrivals-chi/internal/i18n"
	"new-arrivals-chi/internal/testutils"
	"new-arrivals-chi/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// setupPageTest builds a router that renders the real templates. The user
// returned by currentUser, if any, is treated as logged in.
func setupPageTest(t *testing.T, currentUser func() *models.User) *testutils.HTTPTestSuite {
	httpSuite := testutils.SetupHTTPTest()

	bundle := i18n.MustLoad("en")
	renderer, err := web.NewRenderer(bundle)
	require.NoError(t, err)
	httpSuite.Router.HTMLRender = renderer

	httpSuite.Router.Use(middleware.Language(bundle), middleware.Flash())
	httpSuite.Router.Use(func(c *gin.Context) {
		if currentUser != nil {
			if user := currentUser(); user != nil {
				c.Set(auth.CurrentUserKey, user)
			}
		}
		c.Next()
	})
	return httpSuite
}

func newTestSessions(t *testing.T) *auth.SessionManager {
	sessions, err := auth.NewSessionManager(&auth.SessionConfig{
		Secret:      "handler-test-secret",
		TTL:         time.Hour,
		RememberFor: 24 * time.Hour,
		Issuer:      "new-arrivals-chi",
	})
	require.NoError(t, err)
	return sessions
}

func newTestUser(role models.UserRole) *models.User {
	orgID := uuid.New()
	return &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Email:          "manager@example.org",
		Password:       "$2a$10$abcdefghijklmnopqrstuu",
		Role:           role,
		OrganizationID: &orgID,
	}
}

// flashOf returns the flash keys queued by a response
func flashOf(recorder *httptest.ResponseRecorder) string {
	cookie := testutils.ResponseCookie(recorder, "flash")
	if cookie == nil {
		return ""
	}
	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return cookie.Value
	}
	return value
}

type fakeRecorder struct {
	events []string
}

func (r *fakeRecorder) ObserveRequest(string, string, int, time.Duration) {}

func (r *fakeRecorder) RecordAuthEvent(event, outcome string) {
	r.events = append(r.events, event+":"+outcome)
}
