package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"new-arrivals-chi/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	// CSRFCookieName holds the double-submit token
	CSRFCookieName = "csrf_token"
	// CSRFFormField is the hidden form input carrying the token
	CSRFFormField = "csrf_token"
	// CSRFHeaderName is accepted in place of the form field
	CSRFHeaderName = "X-CSRF-Token"

	csrfContextKey = "csrf_token"
	csrfCookieAge  = 24 * 60 * 60

	// Messages answered with 400
	CSRFMissingMessage  = "The CSRF token is missing."
	CSRFMismatchMessage = "The CSRF tokens do not match."
)

// CSRFConfig controls the token cookie
type CSRFConfig struct {
	CookieSecure bool
}

// CSRF issues a token cookie on safe methods and requires unsafe methods
// to echo it in the csrf_token form field or the X-CSRF-Token header.
func CSRF(config CSRFConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieToken, _ := c.Cookie(CSRFCookieName)

		if isSafeMethod(c.Request.Method) {
			if cookieToken == "" {
				token, err := generateCSRFToken()
				if err != nil {
					logger.WithContext(c).WithError(err).Error("failed to generate CSRF token")
					c.AbortWithStatus(http.StatusInternalServerError)
					return
				}
				cookieToken = token
				c.SetSameSite(http.SameSiteLaxMode)
				c.SetCookie(CSRFCookieName, token, csrfCookieAge, "/", "", config.CookieSecure, true)
			}
			c.Set(csrfContextKey, cookieToken)
			c.Next()
			return
		}

		submitted := c.GetHeader(CSRFHeaderName)
		if submitted == "" {
			submitted = c.PostForm(CSRFFormField)
		}

		if cookieToken == "" || submitted == "" {
			logger.WithContext(c).WithField("path", c.Request.URL.Path).Warn("CSRF validation failed: missing token")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": CSRFMissingMessage})
			return
		}
		if subtle.ConstantTimeCompare([]byte(cookieToken), []byte(submitted)) != 1 {
			logger.WithContext(c).WithField("path", c.Request.URL.Path).Warn("CSRF validation failed: token mismatch")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": CSRFMismatchMessage})
			return
		}

		c.Set(csrfContextKey, cookieToken)
		c.Next()
	}
}

// CSRFToken returns the token to embed in forms rendered for this request
func CSRFToken(c *gin.Context) string {
	return c.GetString(csrfContextKey)
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

func generateCSRFToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
