package repository

import (
	"strings"

	"new-arrivals-chi/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceFilter narrows a directory search. Zero values are ignored.
type ServiceFilter struct {
	Category     string
	Neighborhood string
	Organization string
	Query        string
	Language     string
	Day          models.Weekday
	Limit        int
	Offset       int
}

// ServiceListing is one row of a directory search
type ServiceListing struct {
	ServiceID         uuid.UUID `json:"service_id"`
	OrganizationID    uuid.UUID `json:"organization_id"`
	OrganizationName  string    `json:"organization_name"`
	OrganizationPhone string    `json:"organization_phone"`
	Category          string    `json:"category"`
	Description       string    `json:"service"`
	Access            string    `json:"access"`
	ServiceNote       string    `json:"service_note"`
	StreetAddress     string    `json:"street_address"`
	City              string    `json:"city"`
	ZipCode           string    `json:"zip_code"`
	Neighborhood      string    `json:"neighborhood"`
}

// likeEscaper makes LIKE wildcards in user text match literally. Backslash is
// Postgres's default LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern builds an ILIKE pattern matching value as a substring
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

// ServiceRepository handles database operations for services
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// GetByID retrieves a service with its dates and locations
func (r *ServiceRepository) GetByID(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := r.db.Preload("ServiceDates").Preload("Locations").First(&service, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// Search lists services offered by active organizations
func (r *ServiceRepository) Search(filter ServiceFilter) ([]ServiceListing, int64, error) {
	var total int64
	if err := r.searchQuery(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.searchQuery(filter).
		Select(`s.id AS service_id,
			o.id AS organization_id,
			o.name AS organization_name,
			o.phone AS organization_phone,
			s.category AS category,
			s.service AS description,
			COALESCE(s.access, '') AS access,
			COALESCE(s.service_note, '') AS service_note,
			COALESCE(l.street_address, '') AS street_address,
			COALESCE(l.city, '') AS city,
			COALESCE(l.zip_code, '') AS zip_code,
			COALESCE(l.neighborhood, '') AS neighborhood`).
		Order("o.name ASC, s.service ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	listings := []ServiceListing{}
	if err := query.Scan(&listings).Error; err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

func (r *ServiceRepository) searchQuery(filter ServiceFilter) *gorm.DB {
	q := r.db.Table("services AS s").
		Joins("JOIN organizations_services os ON os.service_id = s.id").
		Joins("JOIN organizations o ON o.id = os.organization_id").
		Joins("LEFT JOIN locations l ON l.id = o.location_id").
		Where("o.status = ?", models.OrganizationStatusActive)

	if filter.Category != "" {
		q = q.Where("s.category = ?", filter.Category)
	}
	if filter.Neighborhood != "" {
		q = q.Where(`(l.neighborhood = ? OR EXISTS (
			SELECT 1 FROM service_locations sl
			JOIN locations sloc ON sloc.id = sl.location_id
			WHERE sl.service_id = s.id AND sloc.neighborhood = ?))`,
			filter.Neighborhood, filter.Neighborhood)
	}
	if filter.Organization != "" {
		q = q.Where("o.name ILIKE ?", containsPattern(filter.Organization))
	}
	if filter.Query != "" {
		pattern := containsPattern(filter.Query)
		q = q.Where("(s.service ILIKE ? OR s.service_note ILIKE ?)", pattern, pattern)
	}
	if filter.Language != "" {
		q = q.Where(`EXISTS (
			SELECT 1 FROM languages_organizations lo
			JOIN languages lang ON lang.id = lo.language_id
			WHERE lo.organization_id = o.id AND lang.language ILIKE ?)`, likeEscaper.Replace(filter.Language))
	}
	if filter.Day.IsValid() {
		q = q.Where(`EXISTS (
			SELECT 1 FROM organizations_hours oh
			JOIN hours h ON h.id = oh.hours_id
			WHERE oh.organization_id = o.id AND h.day_of_week = ?)`, int(filter.Day))
	}
	return q
}
