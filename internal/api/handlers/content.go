package handlers

import (
	"errors"
	"net/http"

	"new-arrivals-chi/internal/database/models"
	apperrors "new-arrivals-chi/internal/errors"
	"new-arrivals-chi/internal/service"

	"github.com/gin-gonic/gin"
)

// LegalNode is one step of the legal help flow. Leaves carry a link, inner
// nodes a header and children.
type LegalNode struct {
	Key      string
	Header   string
	Desc     string
	Link     string
	Children []LegalNode
}

func legalLeaf(key, link string) LegalNode {
	return LegalNode{Key: key, Link: link}
}

func legalStatus(key string) LegalNode {
	return LegalNode{
		Key:    key,
		Header: key + "_header",
		Desc:   key + "_desc",
		Children: []LegalNode{
			legalLeaf(key+"_info", "/legal/"+key+"_info"),
			legalLeaf(key+"_apply", "/legal/"+key+"_apply"),
		},
	}
}

// LegalFlow is the question tree rendered on /legal
var LegalFlow = LegalNode{
	Key:    "legal",
	Header: "what_help",
	Children: []LegalNode{
		{
			Key:    "work_auth",
			Header: "work_auth_question",
			Children: []LegalNode{
				legalStatus("tps"),
				legalStatus("vttc"),
				legalStatus("asylum"),
				legalStatus("parole"),
				{
					Key:    "other",
					Header: "other_header",
					Desc:   "other_desc",
					Children: []LegalNode{
						legalLeaf("undocumented", "/legal/undocumented_resources"),
						legalLeaf("lawyers", "/legal/lawyers"),
					},
				},
			},
		},
		legalLeaf("work_rights", "/legal/work_rights"),
		legalLeaf("renters_rights", "/legal/renters_rights"),
		legalLeaf("something_else", "/legal/lawyers"),
	},
}

// LegalTopics are the information pages reachable from the legal flow
var LegalTopics = []string{
	"tps_info", "tps_apply",
	"vttc_info", "vttc_apply",
	"asylum_info", "asylum_apply",
	"parole_info", "parole_apply",
	"undocumented_resources", "lawyers",
	"work_rights", "renters_rights",
}

func isLegalTopic(topic string) bool {
	for _, t := range LegalTopics {
		if t == topic {
			return true
		}
	}
	return false
}

// SearchPageData feeds the shared search partial
type SearchPageData struct {
	Response      *service.SearchResponse
	Neighborhoods []string
}

// ContentHandler serves the informational pages and the service directory
type ContentHandler struct {
	directory     service.DirectoryServiceInterface
	neighborhoods []string
}

// NewContentHandler creates a new content handler
func NewContentHandler(directory service.DirectoryServiceInterface, neighborhoods []string) *ContentHandler {
	return &ContentHandler{directory: directory, neighborhoods: neighborhoods}
}

// Home handles GET /
func (h *ContentHandler) Home(c *gin.Context) {
	renderPage(c, http.StatusOK, "home.html", "welcome", nil)
}

// About handles GET /about
func (h *ContentHandler) About(c *gin.Context) {
	renderPage(c, http.StatusOK, "about.html", "about_title", nil)
}

// Health handles GET /health, the health services landing page
func (h *ContentHandler) Health(c *gin.Context) {
	renderPage(c, http.StatusOK, "health.html", "health_title", nil)
}

// Legal handles GET /legal
func (h *ContentHandler) Legal(c *gin.Context) {
	renderPage(c, http.StatusOK, "legal_flow.html", "legal_title", LegalFlow)
}

// LegalTopic handles GET /legal/:topic
func (h *ContentHandler) LegalTopic(c *gin.Context) {
	topic := c.Param("topic")
	if !isLegalTopic(topic) {
		renderError(c, http.StatusNotFound, "not_found")
		return
	}
	renderPage(c, http.StatusOK, "legal_topic.html", topic+"_title", topic)
}

// HealthSearch handles GET /health/search
func (h *ContentHandler) HealthSearch(c *gin.Context) {
	h.search(c, models.CategoryHealth, "health_search.html", "health_search_title")
}

// Food handles GET /food, the food directory
func (h *ContentHandler) Food(c *gin.Context) {
	h.search(c, models.CategoryFood, "food.html", "food_title")
}

func (h *ContentHandler) search(c *gin.Context, category, tmpl, title string) {
	data := SearchPageData{
		Response:      &service.SearchResponse{},
		Neighborhoods: h.neighborhoods,
	}

	var req service.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.renderSearchError(c, tmpl, title, data)
		return
	}
	req.Category = category

	resp, err := h.directory.Search(&req)
	if err != nil {
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) || errors.Is(err, apperrors.ErrInvalidPaginationParams) {
			h.renderSearchError(c, tmpl, title, data)
			return
		}
		renderServerError(c, err, "service search failed")
		return
	}

	data.Response = resp
	renderPage(c, http.StatusOK, tmpl, title, data)
}

func (h *ContentHandler) renderSearchError(c *gin.Context, tmpl, title string, data SearchPageData) {
	page := newPage(c, title, data)
	page.Flashes = append(page.Flashes, "flash_invalid_form")
	c.HTML(http.StatusBadRequest, tmpl, page)
}
