package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"new-arrivals-chi/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims represents the claims carried by the session cookie
type SessionClaims struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	PasswordStamp string `json:"pwd"`
	Remember      bool   `json:"rem,omitempty"`
	jwt.RegisteredClaims
}

// SessionManager issues and validates signed session cookies
type SessionManager struct {
	config *SessionConfig
	now    func() time.Time
}

// NewSessionManager creates a new session manager
func NewSessionManager(config *SessionConfig) (*SessionManager, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session config: %w", err)
	}
	return &SessionManager{config: config, now: time.Now}, nil
}

// PasswordStamp fingerprints a password hash so a password change
// invalidates sessions issued before it.
func PasswordStamp(hash string) string {
	sum := sha256.Sum256([]byte(hash))
	return hex.EncodeToString(sum[:8])
}

// GenerateToken creates a session token for the user. Remembered sessions
// live for RememberFor, others for TTL.
func (m *SessionManager) GenerateToken(user *models.User, remember bool) (string, error) {
	lifetime := m.config.TTL
	if remember && m.config.RememberFor > 0 {
		lifetime = m.config.RememberFor
	}

	now := m.now()
	claims := &SessionClaims{
		UserID:        user.ID.String(),
		Email:         user.Email,
		Role:          string(user.Role),
		PasswordStamp: PasswordStamp(user.Password),
		Remember:      remember,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.config.Issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.Secret))
}

// ValidateToken validates and parses a session token
func (m *SessionManager) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.config.Secret), nil
	}, jwt.WithIssuer(m.config.Issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, fmt.Errorf("invalid user id in token: %w", err)
	}
	return claims, nil
}

// Login writes the session cookie. Without remember the cookie ends with the
// browser session.
func (m *SessionManager) Login(c *gin.Context, user *models.User, remember bool) error {
	token, err := m.GenerateToken(user, remember)
	if err != nil {
		return fmt.Errorf("failed to issue session: %w", err)
	}

	maxAge := 0
	if remember {
		maxAge = int(m.config.RememberFor.Seconds())
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", m.config.Secure, true)
	return nil
}

// Logout expires the session cookie
func (m *SessionManager) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", m.config.Secure, true)
}
