package repository

import (
	"new-arrivals-chi/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationRepository handles database operations for locations
type LocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Create creates a new location
func (r *LocationRepository) Create(location *models.Location) error {
	return r.db.Create(location).Error
}

// GetByID retrieves a location by ID
func (r *LocationRepository) GetByID(id uuid.UUID) (*models.Location, error) {
	var location models.Location
	err := r.db.First(&location, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// GetByIDs retrieves the locations with the given IDs. Unknown IDs are skipped.
func (r *LocationRepository) GetByIDs(ids []uuid.UUID) ([]models.Location, error) {
	if len(ids) == 0 {
		return []models.Location{}, nil
	}
	var locations []models.Location
	if err := r.db.Where("id IN ?", ids).Order("street_address ASC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}
