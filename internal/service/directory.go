package service

import (
	"fmt"
	"strings"

	"new-arrivals-chi/internal/database/models"
	apperrors "new-arrivals-chi/internal/errors"
	"new-arrivals-chi/internal/repository"
	"new-arrivals-chi/internal/security"
)

const (
	defaultSearchPageSize = 25
	maxSearchPageSize     = 100
)

// DirectoryService searches the services offered by active organizations
type DirectoryService struct {
	repo      repository.ServiceRepositoryInterface
	sanitizer *security.Sanitizer
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(repo repository.ServiceRepositoryInterface) *DirectoryService {
	return &DirectoryService{
		repo:      repo,
		sanitizer: security.NewSanitizer(),
	}
}

// SearchRequest carries the directory filters from the search form
type SearchRequest struct {
	Category     string `form:"category" json:"category"`
	Supplies     string `form:"supplies" json:"supplies"`
	Neighborhood string `form:"neighborhood" json:"neighborhood"`
	Organization string `form:"organization" json:"organization"`
	Language     string `form:"language" json:"language"`
	Day          string `form:"day" json:"day"`
	Page         int    `form:"page" json:"page"`
	PageSize     int    `form:"page_size" json:"page_size"`
}

// SearchResponse represents a page of directory results
type SearchResponse struct {
	Results  []repository.ServiceListing `json:"results"`
	Total    int64                       `json:"total"`
	Page     int                         `json:"page"`
	PageSize int                         `json:"page_size"`
	Filters  SearchRequest               `json:"filters"`
}

// Search returns the services matching the request. Filter values are
// sanitized before use and echoed back in the response.
func (s *DirectoryService) Search(req *SearchRequest) (*SearchResponse, error) {
	cleaned := SearchRequest{
		Category:     strings.ToLower(s.sanitizer.Clean(req.Category)),
		Supplies:     s.sanitizer.Clean(req.Supplies),
		Neighborhood: s.sanitizer.Clean(req.Neighborhood),
		Organization: s.sanitizer.Clean(req.Organization),
		Language:     s.sanitizer.Clean(req.Language),
		Day:          strings.ToLower(s.sanitizer.Clean(req.Day)),
		Page:         req.Page,
		PageSize:     req.PageSize,
	}

	if cleaned.Page < 0 || cleaned.PageSize < 0 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	if cleaned.Page == 0 {
		cleaned.Page = 1
	}
	if cleaned.PageSize == 0 {
		cleaned.PageSize = defaultSearchPageSize
	}
	if cleaned.PageSize > maxSearchPageSize {
		cleaned.PageSize = maxSearchPageSize
	}

	filter := repository.ServiceFilter{
		Category:     cleaned.Category,
		Neighborhood: cleaned.Neighborhood,
		Organization: cleaned.Organization,
		Query:        cleaned.Supplies,
		Language:     cleaned.Language,
		Limit:        cleaned.PageSize,
		Offset:       (cleaned.Page - 1) * cleaned.PageSize,
	}
	if cleaned.Day != "" {
		day, ok := models.ParseWeekday(cleaned.Day)
		if !ok {
			return nil, apperrors.ErrInvalidWeekday
		}
		filter.Day = day
	}

	results, total, err := s.repo.Search(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search services: %w", err)
	}

	return &SearchResponse{
		Results:  results,
		Total:    total,
		Page:     cleaned.Page,
		PageSize: cleaned.PageSize,
		Filters:  cleaned,
	}, nil
}
