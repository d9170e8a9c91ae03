package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	flashCookieName   = "flash"
	flashContextKey   = "flashes"
	flashPendingKey   = "flashes_pending"
	flashSeparator    = "|"
	flashMaxMessages  = 5
	flashCookieMaxAge = 300
)

// flash values are translation keys, never free text
var flashKeyPattern = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)

// Flash moves queued messages from the flash cookie into the request
// context and clears the cookie, so each message is shown once.
func Flash() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(flashCookieName)
		if err == nil && raw != "" {
			c.Set(flashContextKey, parseFlashes(raw))
			setFlashCookie(c, "", -1)
		}
		c.Next()
	}
}

// AddFlash queues a translation key for the next rendered page
func AddFlash(c *gin.Context, key string) {
	if !flashKeyPattern.MatchString(key) {
		return
	}
	pending := append(c.GetStringSlice(flashPendingKey), key)
	if len(pending) > flashMaxMessages {
		pending = pending[len(pending)-flashMaxMessages:]
	}
	c.Set(flashPendingKey, pending)
	setFlashCookie(c, strings.Join(pending, flashSeparator), flashCookieMaxAge)
}

// Flashes returns the messages delivered with this request
func Flashes(c *gin.Context) []string {
	return c.GetStringSlice(flashContextKey)
}

// setFlashCookie replaces any flash cookie already queued on the response
func setFlashCookie(c *gin.Context, value string, maxAge int) {
	header := c.Writer.Header()
	existing := header.Values("Set-Cookie")
	header.Del("Set-Cookie")
	for _, v := range existing {
		if !strings.HasPrefix(v, flashCookieName+"=") {
			header.Add("Set-Cookie", v)
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, value, maxAge, "/", "", false, true)
}

func parseFlashes(raw string) []string {
	var keys []string
	for _, key := range strings.Split(raw, flashSeparator) {
		if flashKeyPattern.MatchString(key) {
			keys = append(keys, key)
		}
		if len(keys) == flashMaxMessages {
			break
		}
	}
	return keys
}
