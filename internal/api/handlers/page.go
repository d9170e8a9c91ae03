package handlers

import (
	"net/http"
	"strings"

	"new-arrivals-chi/internal/api/middleware"
	"new-arrivals-chi/internal/auth"
	"new-arrivals-chi/internal/logger"
	"new-arrivals-chi/internal/web"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// newPage collects the per-request values every template needs
func newPage(c *gin.Context, title string, data interface{}) web.Page {
	user, _ := auth.CurrentUser(c)
	return web.Page{
		Lang:      middleware.Lang(c),
		Title:     title,
		Flashes:   middleware.Flashes(c),
		CSRFToken: middleware.CSRFToken(c),
		User:      user,
		Path:      c.Request.URL.RequestURI(),
		Data:      data,
	}
}

func renderPage(c *gin.Context, status int, name, title string, data interface{}) {
	c.HTML(status, name, newPage(c, title, data))
}

func renderError(c *gin.Context, status int, titleKey string) {
	c.HTML(status, web.ErrorTemplate, newPage(c, titleKey, nil))
}

func renderServerError(c *gin.Context, err error, msg string) {
	logger.WithContext(c).WithError(err).Error(msg)
	renderError(c, http.StatusInternalServerError, "error_title")
}

// redirect keeps the visitor's language across the redirect
func redirect(c *gin.Context, path string) {
	c.Redirect(http.StatusFound, web.LangURL(path, middleware.Lang(c)))
}

// flashAndRedirect queues a message and sends the visitor back with PRG
func flashAndRedirect(c *gin.Context, key, path string) {
	middleware.AddFlash(c, key)
	redirect(c, path)
}

// safeNext accepts only same-site absolute paths as redirect targets
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}

// NotFound renders the 404 page for unmatched routes
func NotFound(c *gin.Context) {
	renderError(c, http.StatusNotFound, "not_found")
}
