package middleware

import (
	"strings"

	"new-arrivals-chi/internal/i18n"
	"new-arrivals-chi/internal/security"

	"github.com/gin-gonic/gin"
)

const languageContextKey = "lang"

// Language resolves the lang query parameter. Values are sanitized and
// unsupported ones fall back to the bundle's default language.
func Language(bundle *i18n.Bundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := strings.ToLower(security.Text(c.Query("lang")))
		if !bundle.Supported(lang) {
			lang = bundle.Default()
		}
		c.Set(languageContextKey, lang)
		c.Next()
	}
}

// Lang returns the language resolved for this request
func Lang(c *gin.Context) string {
	if lang := c.GetString(languageContextKey); lang != "" {
		return lang
	}
	return "en"
}
