package repository

import (
	"new-arrivals-chi/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetWithOrganization(id uuid.UUID) (*models.User, error)
	UpdatePassword(id uuid.UUID, passwordHash string) error
	Update(user *models.User) error
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	CreateWithManager(org *models.Organization, manager *models.User) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	UpdateStatus(id uuid.UUID, status models.OrganizationStatus, updatedBy *uuid.UUID) error
	AssignLocation(orgID, locationID uuid.UUID) error
	GetWithAllRelations(id uuid.UUID) (*models.Organization, error)
	RegisterLocationAndHours(orgID uuid.UUID, location *models.Location, hours []models.Hours) error
	AddHours(orgID uuid.UUID, hours []models.Hours) error
	ReplaceLanguages(orgID uuid.UUID, languages []models.Language) error
	AddService(orgID uuid.UUID, service *models.Service) error
}

// LocationRepositoryInterface defines the interface for location repository operations
type LocationRepositoryInterface interface {
	Create(location *models.Location) error
	GetByID(id uuid.UUID) (*models.Location, error)
	GetByIDs(ids []uuid.UUID) ([]models.Location, error)
}

// LanguageRepositoryInterface defines the interface for language repository operations
type LanguageRepositoryInterface interface {
	GetAll() ([]models.Language, error)
	GetByNames(names []string) ([]models.Language, error)
	FirstOrCreate(name string) (*models.Language, error)
}

// ServiceRepositoryInterface defines the interface for service repository operations
type ServiceRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Service, error)
	Search(filter ServiceFilter) ([]ServiceListing, int64, error)
}
