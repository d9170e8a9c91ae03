package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"new-arrivals-chi/internal/auth"
	apperrors "new-arrivals-chi/internal/errors"
	"new-arrivals-chi/internal/logger"
	"new-arrivals-chi/internal/metrics"
	"new-arrivals-chi/internal/service"

	"github.com/gin-gonic/gin"
)

// Redirect targets after the account forms
const (
	HomePath      = "/"
	DashboardPath = "/dashboard"
)

// AuthHandler handles signup, login and password changes
type AuthHandler struct {
	accounts service.AccountServiceInterface
	sessions *auth.SessionManager
	metrics  metrics.Recorder
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accounts service.AccountServiceInterface, sessions *auth.SessionManager, recorder metrics.Recorder) *AuthHandler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &AuthHandler{accounts: accounts, sessions: sessions, metrics: recorder}
}

// signupFlash maps signup failures to their messages
func signupFlash(err error) (string, bool) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidEmail):
		return "flash_invalid_email", true
	case errors.Is(err, apperrors.ErrUserExists):
		return "flash_email_exists", true
	case errors.Is(err, apperrors.ErrPasswordMismatch):
		return "flash_password_mismatch", true
	case errors.Is(err, apperrors.ErrWeakPassword):
		return "flash_weak_password", true
	}
	return "", false
}

// passwordChangeFlash maps change password failures to their messages
func passwordChangeFlash(err error) (string, bool) {
	switch {
	case errors.Is(err, apperrors.ErrWrongPassword):
		return "flash_wrong_password", true
	case errors.Is(err, apperrors.ErrPasswordReused):
		return "flash_password_reused", true
	case errors.Is(err, apperrors.ErrPasswordMismatch):
		return "flash_new_password_mismatch", true
	case errors.Is(err, apperrors.ErrWeakPassword):
		return "flash_weak_new_password", true
	case errors.Is(err, apperrors.ErrInvalidEmail):
		return "flash_invalid_email", true
	case errors.Is(err, apperrors.ErrInvalidRegistrationCredentials):
		return "flash_bad_registration", true
	}
	return "", false
}

// SignupPage handles GET /signup
func (h *AuthHandler) SignupPage(c *gin.Context) {
	renderPage(c, http.StatusOK, "signup.html", "signup_title", nil)
}

// Signup handles POST /signup. A new account is logged in without remember.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		flashAndRedirect(c, "flash_invalid_form", "/signup")
		return
	}

	user, err := h.accounts.Signup(&req)
	if err != nil {
		h.metrics.RecordAuthEvent(metrics.EventSignup, metrics.OutcomeFailure)
		if key, ok := signupFlash(err); ok {
			flashAndRedirect(c, key, "/signup")
			return
		}
		renderServerError(c, err, "signup failed")
		return
	}

	if err := h.sessions.Login(c, user, false); err != nil {
		renderServerError(c, err, "failed to start session after signup")
		return
	}
	h.metrics.RecordAuthEvent(metrics.EventSignup, metrics.OutcomeSuccess)
	logger.WithContext(c).WithField("user_id", user.ID).Info("user signed up")
	redirect(c, DashboardPath)
}

// LoginPage handles GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	renderPage(c, http.StatusOK, "login.html", "login_title", safeNext(c.Query("next")))
}

// Login handles POST /login. The remember checkbox keeps the session past
// the browser session.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	remember := c.PostForm("remember") == "true"
	next := safeNext(c.PostForm("next"))

	user, err := h.accounts.Authenticate(email, password)
	if err != nil {
		h.metrics.RecordAuthEvent(metrics.EventLogin, metrics.OutcomeFailure)
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			logger.WithContext(c).WithField("client_ip", c.ClientIP()).Warn("failed login attempt")
			target := auth.LoginPath
			if next != "" {
				target += "?next=" + url.QueryEscape(next)
			}
			flashAndRedirect(c, "flash_bad_login", target)
			return
		}
		renderServerError(c, err, "login failed")
		return
	}

	if err := h.sessions.Login(c, user, remember); err != nil {
		renderServerError(c, err, "failed to start session")
		return
	}
	h.metrics.RecordAuthEvent(metrics.EventLogin, metrics.OutcomeSuccess)
	logger.WithContext(c).WithField("user_id", user.ID).Info("user logged in")

	if next != "" {
		c.Redirect(http.StatusFound, next)
		return
	}
	redirect(c, DashboardPath)
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout(c)
	h.metrics.RecordAuthEvent(metrics.EventLogout, metrics.OutcomeSuccess)
	redirect(c, HomePath)
}

// ChangePasswordPage handles GET /change_password
func (h *AuthHandler) ChangePasswordPage(c *gin.Context) {
	renderPage(c, http.StatusOK, "change_password.html", "change_password_title", nil)
}

// ChangePassword handles POST /change_password. The session is reissued so
// it carries the new password stamp.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		redirect(c, auth.LoginPath)
		return
	}

	var req service.ChangePasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		flashAndRedirect(c, "flash_invalid_form", "/change_password")
		return
	}

	if err := h.accounts.ChangePassword(user.ID, &req); err != nil {
		h.metrics.RecordAuthEvent(metrics.EventChangePassword, metrics.OutcomeFailure)
		if key, ok := passwordChangeFlash(err); ok {
			flashAndRedirect(c, key, "/change_password")
			return
		}
		renderServerError(c, err, "password change failed")
		return
	}

	updated, err := h.accounts.GetUser(user.ID)
	if err != nil {
		renderServerError(c, err, "failed to reload user after password change")
		return
	}
	if err := h.sessions.Login(c, updated, false); err != nil {
		renderServerError(c, err, "failed to refresh session")
		return
	}

	h.metrics.RecordAuthEvent(metrics.EventChangePassword, metrics.OutcomeSuccess)
	flashAndRedirect(c, "flash_password_changed", DashboardPath)
}

// RegistrationChangePasswordPage handles GET /registration_change_password
func (h *AuthHandler) RegistrationChangePasswordPage(c *gin.Context) {
	renderPage(c, http.StatusOK, "registration_change_password.html", "registration_change_password_title", nil)
}

// RegistrationChangePassword handles POST /registration_change_password,
// where a new organization manager replaces the emailed password.
func (h *AuthHandler) RegistrationChangePassword(c *gin.Context) {
	var req service.RegistrationChangePasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		flashAndRedirect(c, "flash_invalid_form", "/registration_change_password")
		return
	}

	if err := h.accounts.RegistrationChangePassword(&req); err != nil {
		h.metrics.RecordAuthEvent(metrics.EventRegistrationPassword, metrics.OutcomeFailure)
		if key, ok := passwordChangeFlash(err); ok {
			flashAndRedirect(c, key, "/registration_change_password")
			return
		}
		renderServerError(c, err, "registration password change failed")
		return
	}

	h.metrics.RecordAuthEvent(metrics.EventRegistrationPassword, metrics.OutcomeSuccess)
	flashAndRedirect(c, "flash_password_changed", auth.LoginPath)
}
