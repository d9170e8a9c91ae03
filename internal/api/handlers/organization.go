package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"new-arrivals-chi/internal/auth"
	"new-arrivals-chi/internal/database/models"
	apperrors "new-arrivals-chi/internal/errors"
	"new-arrivals-chi/internal/logger"
	"new-arrivals-chi/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// repeatChoices are offered in the add service form
var repeatChoices = []string{
	string(models.RepeatEveryDay),
	string(models.RepeatEveryWeek),
	string(models.RepeatEveryOtherWeek),
	string(models.RepeatEveryMonth),
}

// DashboardData feeds dashboard.html
type DashboardData struct {
	Profile       *service.OrganizationProfile
	Neighborhoods []string
	Languages     []string
	Repeats       []string
}

// OrganizationPageData feeds organization.html
type OrganizationPageData struct {
	Profile   *service.OrganizationProfile
	CanToggle bool
}

// OrganizationHandler serves the dashboard and organization pages
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// organizationFlash maps organization form failures to their messages
func organizationFlash(err error) (string, bool) {
	switch {
	case errors.Is(err, apperrors.ErrUserHasNoOrganization):
		return "flash_no_organization", true
	case errors.Is(err, apperrors.ErrUnknownNeighborhood):
		return "flash_unknown_neighborhood", true
	case errors.Is(err, apperrors.ErrInvalidTime), errors.Is(err, apperrors.ErrInvalidWeekday):
		return "flash_invalid_hours", true
	case errors.Is(err, apperrors.ErrInvalidEmail):
		return "flash_invalid_email", true
	case errors.Is(err, apperrors.ErrInvalidPhone):
		return "flash_invalid_phone", true
	case errors.Is(err, apperrors.ErrMissingOrganizationFields):
		return "flash_missing_name", true
	case errors.Is(err, apperrors.ErrUserExists):
		return "flash_email_exists", true
	case errors.Is(err, apperrors.ErrAdminRequired):
		return "flash_admin_required", true
	}

	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		if verr.Field == "hours" {
			return "flash_invalid_hours", true
		}
		return "flash_invalid_form", true
	}
	return "", false
}

// Dashboard handles GET /dashboard
func (h *OrganizationHandler) Dashboard(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		redirect(c, auth.LoginPath)
		return
	}

	profile, err := h.service.GetProfileForUser(user.ID)
	if err != nil && !errors.Is(err, apperrors.ErrUserHasNoOrganization) {
		renderServerError(c, err, "failed to load dashboard profile")
		return
	}

	languages, err := h.service.ListLanguages()
	if err != nil {
		renderServerError(c, err, "failed to list languages")
		return
	}

	renderPage(c, http.StatusOK, "dashboard.html", "dashboard_title", DashboardData{
		Profile:       profile,
		Neighborhoods: h.service.ListNeighborhoods(),
		Languages:     languages,
		Repeats:       repeatChoices,
	})
}

// SaveRegistration handles POST /dashboard/registration: the primary
// location plus one row per weekday. Rows without times are skipped.
func (h *OrganizationHandler) SaveRegistration(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		redirect(c, auth.LoginPath)
		return
	}

	var req service.RegistrationRequest
	if err := c.ShouldBind(&req.Location); err != nil {
		flashAndRedirect(c, "flash_invalid_form", DashboardPath)
		return
	}

	hours, err := parseHoursForm(c)
	if err != nil {
		flashAndRedirect(c, "flash_invalid_hours", DashboardPath)
		return
	}
	req.Hours = hours

	if err := h.service.Register(user.ID, &req); err != nil {
		if key, ok := organizationFlash(err); ok {
			flashAndRedirect(c, key, DashboardPath)
			return
		}
		renderServerError(c, err, "failed to save registration")
		return
	}
	flashAndRedirect(c, "flash_registration_saved", DashboardPath)
}

// parseHoursForm zips the parallel day_of_week, opening_time and
// closing_time arrays of the registration form.
func parseHoursForm(c *gin.Context) ([]service.HoursRequest, error) {
	days := c.PostFormArray("day_of_week")
	opens := c.PostFormArray("opening_time")
	closes := c.PostFormArray("closing_time")
	if len(opens) != len(days) || len(closes) != len(days) {
		return nil, apperrors.ErrInvalidTime
	}

	var hours []service.HoursRequest
	for i, raw := range days {
		open := strings.TrimSpace(opens[i])
		closing := strings.TrimSpace(closes[i])
		if open == "" && closing == "" {
			continue
		}
		day, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apperrors.ErrInvalidWeekday
		}
		hours = append(hours, service.HoursRequest{
			DayOfWeek:   day,
			OpeningTime: open,
			ClosingTime: closing,
		})
	}
	return hours, nil
}

// SaveLanguages handles POST /dashboard/languages. Checked languages and a
// comma or newline separated list of others are combined.
func (h *OrganizationHandler) SaveLanguages(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		redirect(c, auth.LoginPath)
		return
	}

	names := c.PostFormArray("language")
	others := strings.FieldsFunc(c.PostForm("other_languages"), func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	names = append(names, others...)

	if err := h.service.SetLanguages(user.ID, names); err != nil {
		if key, ok := organizationFlash(err); ok {
			flashAndRedirect(c, key, DashboardPath)
			return
		}
		renderServerError(c, err, "failed to save languages")
		return
	}
	flashAndRedirect(c, "flash_languages_saved", DashboardPath)
}

// AddService handles POST /dashboard/services
func (h *OrganizationHandler) AddService(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		redirect(c, auth.LoginPath)
		return
	}

	req := service.ServiceRequest{
		Category:    c.PostForm("category"),
		Service:     c.PostForm("service"),
		Access:      c.PostForm("access"),
		ServiceNote: c.PostForm("service_note"),
	}
	if date := strings.TrimSpace(c.PostForm("date")); date != "" {
		req.Dates = append(req.Dates, service.ServiceDateRequest{
			Date:      date,
			StartTime: c.PostForm("start_time"),
			EndTime:   c.PostForm("end_time"),
			Repeat:    c.PostForm("repeat"),
		})
	}
	for _, raw := range c.PostFormArray("location_id") {
		id, err := uuid.Parse(raw)
		if err != nil {
			flashAndRedirect(c, "flash_invalid_form", DashboardPath)
			return
		}
		req.LocationIDs = append(req.LocationIDs, id)
	}

	if _, err := h.service.AddService(user.ID, &req); err != nil {
		if key, ok := organizationFlash(err); ok {
			flashAndRedirect(c, key, DashboardPath)
			return
		}
		if errors.Is(err, apperrors.ErrLocationNotFound) {
			flashAndRedirect(c, "flash_invalid_form", DashboardPath)
			return
		}
		renderServerError(c, err, "failed to add service")
		return
	}
	flashAndRedirect(c, "flash_service_added", DashboardPath)
}

// Profile handles GET /org/:id. Inactive organizations are visible only to
// administrators and their own manager.
func (h *OrganizationHandler) Profile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		renderError(c, http.StatusNotFound, "not_found")
		return
	}

	viewer, _ := auth.CurrentUser(c)
	profile, err := h.service.GetPublicProfile(id, viewer)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) || errors.Is(err, apperrors.ErrOrganizationNotVisible) {
			renderError(c, http.StatusNotFound, "not_found")
			return
		}
		renderServerError(c, err, "failed to load organization")
		return
	}

	renderPage(c, http.StatusOK, "organization.html", "organization", OrganizationPageData{
		Profile:   profile,
		CanToggle: viewer != nil && viewer.IsAdmin(),
	})
}

// AddOrganizationPage handles GET /add_organization
func (h *OrganizationHandler) AddOrganizationPage(c *gin.Context) {
	renderPage(c, http.StatusOK, "add_organization.html", "add_organization_title", nil)
}

// AddOrganization handles POST /add_organization. The organization is kept
// even when the registration email cannot be delivered.
func (h *OrganizationHandler) AddOrganization(c *gin.Context) {
	admin, ok := auth.CurrentUser(c)
	if !ok {
		redirect(c, auth.LoginPath)
		return
	}

	var req service.AddOrganizationRequest
	if err := c.ShouldBind(&req); err != nil {
		flashAndRedirect(c, "flash_invalid_form", "/add_organization")
		return
	}

	org, err := h.service.AddOrganization(admin.ID, &req)
	if err != nil {
		if org != nil {
			logger.WithContext(c).WithError(err).WithField("organization_id", org.ID).Error("registration email failed")
			flashAndRedirect(c, "flash_organization_mail_failed", "/add_organization")
			return
		}
		if errors.Is(err, apperrors.ErrAdminRequired) {
			renderError(c, http.StatusForbidden, "forbidden")
			return
		}
		if key, ok := organizationFlash(err); ok {
			flashAndRedirect(c, key, "/add_organization")
			return
		}
		renderServerError(c, err, "failed to add organization")
		return
	}
	flashAndRedirect(c, "flash_organization_added", "/add_organization")
}

// ToggleStatus handles POST /org/:id/status
func (h *OrganizationHandler) ToggleStatus(c *gin.Context) {
	admin, ok := auth.CurrentUser(c)
	if !ok {
		redirect(c, auth.LoginPath)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		renderError(c, http.StatusNotFound, "not_found")
		return
	}

	status, err := h.service.ToggleStatus(id, admin.ID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrOrganizationNotFound):
			renderError(c, http.StatusNotFound, "not_found")
		case errors.Is(err, apperrors.ErrAdminRequired):
			renderError(c, http.StatusForbidden, "forbidden")
		default:
			renderServerError(c, err, "failed to toggle organization status")
		}
		return
	}

	logger.WithContext(c).WithFields(map[string]interface{}{
		"organization_id": id,
		"status":          status,
	}).Info("organization status changed")
	flashAndRedirect(c, "flash_status_changed", "/org/"+id.String())
}
