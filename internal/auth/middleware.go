package auth

import (
	"net/http"
	"net/url"

	"new-arrivals-chi/internal/database/models"
	"new-arrivals-chi/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by LoadUser
const (
	CurrentUserKey = "current_user"
	UserIDKey      = "user_id"
	RoleKey        = "role"
	ClaimsKey      = "session_claims"
)

// LoginPath is where anonymous users are sent by RequireLogin
const LoginPath = "/login"

// UserLoader loads the account behind a session
type UserLoader interface {
	GetByID(id uuid.UUID) (*models.User, error)
}

// AuthMiddleware resolves the session cookie into the current user
type AuthMiddleware struct {
	sessions *SessionManager
	users    UserLoader
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(sessions *SessionManager, users UserLoader) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, users: users}
}

// LoadUser validates the session cookie if present and sets the user context.
// Invalid, expired or stale sessions are cleared and the request continues
// anonymously.
func (m *AuthMiddleware) LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := m.sessions.ValidateToken(token)
		if err != nil {
			logger.WithContext(c).WithError(err).Debug("discarding invalid session")
			m.sessions.Logout(c)
			c.Next()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			m.sessions.Logout(c)
			c.Next()
			return
		}
		user, err := m.users.GetByID(userID)
		if err != nil || user == nil || PasswordStamp(user.Password) != claims.PasswordStamp {
			m.sessions.Logout(c)
			c.Next()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Set(UserIDKey, user.ID)
		c.Set(logger.EmailKey, user.Email)
		c.Set(RoleKey, string(user.Role))
		c.Set(ClaimsKey, claims)

		c.Next()
	}
}

// RequireLogin redirects anonymous users to the login page
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			target := LoginPath + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole rejects users lacking the given role with 403
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		if user.Role != role {
			logger.WithContext(c).WithField("required_role", role).Warn("access denied")
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user loaded for this request
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

// GetSessionClaims returns the validated session claims for this request
func GetSessionClaims(c *gin.Context) (*SessionClaims, bool) {
	value, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*SessionClaims)
	return claims, ok
}
