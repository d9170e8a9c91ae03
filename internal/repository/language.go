package repository

import (
	"new-arrivals-chi/internal/database/models"

	"gorm.io/gorm"
)

// LanguageRepository handles database operations for languages
type LanguageRepository struct {
	db *gorm.DB
}

// NewLanguageRepository creates a new language repository
func NewLanguageRepository(db *gorm.DB) *LanguageRepository {
	return &LanguageRepository{db: db}
}

// GetAll retrieves every known language ordered by name
func (r *LanguageRepository) GetAll() ([]models.Language, error) {
	var languages []models.Language
	if err := r.db.Order("language ASC").Find(&languages).Error; err != nil {
		return nil, err
	}
	return languages, nil
}

// GetByNames retrieves the languages matching the given names
func (r *LanguageRepository) GetByNames(names []string) ([]models.Language, error) {
	if len(names) == 0 {
		return []models.Language{}, nil
	}
	var languages []models.Language
	if err := r.db.Where("language IN ?", names).Order("language ASC").Find(&languages).Error; err != nil {
		return nil, err
	}
	return languages, nil
}

// FirstOrCreate returns the named language, creating it when missing
func (r *LanguageRepository) FirstOrCreate(name string) (*models.Language, error) {
	language := models.Language{Language: name}
	if err := r.db.Where(models.Language{Language: name}).FirstOrCreate(&language).Error; err != nil {
		return nil, err
	}
	return &language, nil
}
