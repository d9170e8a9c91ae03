package repository

import (
	"fmt"

	"new-arrivals-chi/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// CreateWithManager creates an organization and the user account that manages
// it in one transaction.
func (r *OrganizationRepository) CreateWithManager(org *models.Organization, manager *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Location", "Languages", "Hours", "Services").Create(org).Error; err != nil {
			return fmt.Errorf("create organization: %w", err)
		}
		manager.OrganizationID = &org.ID
		if err := tx.Omit("Organization").Create(manager).Error; err != nil {
			return fmt.Errorf("create manager: %w", err)
		}
		return nil
	})
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetAll retrieves all organizations with pagination
func (r *OrganizationRepository) GetAll(limit, offset int) ([]models.Organization, int64, error) {
	var orgs []models.Organization
	var total int64

	if err := r.db.Model(&models.Organization{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&orgs).Error
	if err != nil {
		return nil, 0, err
	}

	return orgs, total, nil
}

// UpdateStatus sets the organization's status
func (r *OrganizationRepository) UpdateStatus(id uuid.UUID, status models.OrganizationStatus, updatedBy *uuid.UUID) error {
	result := r.db.Model(&models.Organization{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_by": updatedBy})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AssignLocation points the organization at its primary location
func (r *OrganizationRepository) AssignLocation(orgID, locationID uuid.UUID) error {
	result := r.db.Model(&models.Organization{}).Where("id = ?", orgID).Update("location_id", locationID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetWithAllRelations retrieves an organization with its location, languages,
// hours and services. Hours come back in insertion order.
func (r *OrganizationRepository) GetWithAllRelations(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.
		Preload("Location").
		Preload("Languages", func(db *gorm.DB) *gorm.DB {
			return db.Order("languages.language ASC")
		}).
		Preload("Hours", func(db *gorm.DB) *gorm.DB {
			return db.Order("hours.created_at ASC")
		}).
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("services.created_at ASC")
		}).
		Preload("Services.ServiceDates", func(db *gorm.DB) *gorm.DB {
			return db.Order("service_dates.date ASC, service_dates.start_time ASC")
		}).
		Preload("Services.Locations").
		First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// RegisterLocationAndHours stores the organization's primary location and
// weekly hours in one transaction.
func (r *OrganizationRepository) RegisterLocationAndHours(orgID uuid.UUID, location *models.Location, hours []models.Hours) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var org models.Organization
		if err := tx.First(&org, "id = ?", orgID).Error; err != nil {
			return err
		}

		location.PrimaryLocation = true
		if err := tx.Create(location).Error; err != nil {
			return fmt.Errorf("create location: %w", err)
		}
		if err := tx.Model(&org).Update("location_id", location.ID).Error; err != nil {
			return fmt.Errorf("assign location: %w", err)
		}
		return appendHours(tx, &org, hours)
	})
}

// AddHours appends opening hours to an organization
func (r *OrganizationRepository) AddHours(orgID uuid.UUID, hours []models.Hours) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var org models.Organization
		if err := tx.First(&org, "id = ?", orgID).Error; err != nil {
			return err
		}
		return appendHours(tx, &org, hours)
	})
}

func appendHours(tx *gorm.DB, org *models.Organization, hours []models.Hours) error {
	if len(hours) == 0 {
		return nil
	}
	// One insert per row keeps created_at increasing in slice order.
	for i := range hours {
		if err := tx.Create(&hours[i]).Error; err != nil {
			return fmt.Errorf("create hours: %w", err)
		}
	}
	if err := tx.Model(org).Omit("Hours.*").Association("Hours").Append(hours); err != nil {
		return fmt.Errorf("link hours: %w", err)
	}
	return nil
}

// ReplaceLanguages sets the languages an organization offers
func (r *OrganizationRepository) ReplaceLanguages(orgID uuid.UUID, languages []models.Language) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var org models.Organization
		if err := tx.First(&org, "id = ?", orgID).Error; err != nil {
			return err
		}
		if err := tx.Model(&org).Omit("Languages.*").Association("Languages").Replace(languages); err != nil {
			return fmt.Errorf("replace languages: %w", err)
		}
		return nil
	})
}

// AddService creates a service with its dates and locations and links it to
// the organization.
func (r *OrganizationRepository) AddService(orgID uuid.UUID, service *models.Service) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var org models.Organization
		if err := tx.First(&org, "id = ?", orgID).Error; err != nil {
			return err
		}
		if err := tx.Create(service).Error; err != nil {
			return fmt.Errorf("create service: %w", err)
		}
		if err := tx.Model(&org).Omit("Services.*").Association("Services").Append(service); err != nil {
			return fmt.Errorf("link service: %w", err)
		}
		return nil
	})
}
