package handlers

import (
	"errors"
	"net/http"

	"new-arrivals-chi/internal/auth"
	apperrors "new-arrivals-chi/internal/errors"
	"new-arrivals-chi/internal/logger"
	"new-arrivals-chi/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// APIHandler serves the read-only JSON API
type APIHandler struct {
	organizations service.OrganizationServiceInterface
	directory     service.DirectoryServiceInterface
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(organizations service.OrganizationServiceInterface, directory service.DirectoryServiceInterface) *APIHandler {
	return &APIHandler{organizations: organizations, directory: directory}
}

// GetOrganization handles GET /api/v1/organizations/:id
// @Summary Get organization profile
// @Description Get the public profile of an organization, with hours grouped by weekday
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationProfile "Successfully retrieved organization"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /organizations/{id} [get]
func (h *APIHandler) GetOrganization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid organization ID: invalid UUID format"})
		return
	}

	viewer, _ := auth.CurrentUser(c)
	profile, err := h.organizations.GetPublicProfile(id, viewer)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) || errors.Is(err, apperrors.ErrOrganizationNotVisible) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: apperrors.ErrOrganizationNotFound.Error()})
			return
		}
		logger.WithContext(c).WithError(err).Error("failed to get organization")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get organization"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SearchServices handles GET /api/v1/services/search
// @Summary Search the service directory
// @Description Search services by category, supplies, neighborhood, organization, language and weekday
// @Tags services
// @Produce json
// @Param category query string false "Service category" Enums(legal, health, food)
// @Param supplies query string false "Text matched against the service description"
// @Param neighborhood query string false "Neighborhood name"
// @Param organization query string false "Organization name fragment"
// @Param language query string false "Language offered"
// @Param day query string false "Weekday name, e.g. monday"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Results per page" default(25)
// @Success 200 {object} service.SearchResponse "Search results"
// @Failure 400 {object} ErrorResponse "Invalid search parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /services/search [get]
func (h *APIHandler) SearchServices(c *gin.Context) {
	var req service.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	resp, err := h.directory.Search(&req)
	if err != nil {
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) || errors.Is(err, apperrors.ErrInvalidPaginationParams) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.WithContext(c).WithError(err).Error("failed to search services")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to search services"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
