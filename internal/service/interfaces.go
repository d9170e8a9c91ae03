package service

import (
	"new-arrivals-chi/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AccountServiceInterface defines the interface for account service
type AccountServiceInterface interface {
	Signup(req *SignupRequest) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	ChangePassword(userID uuid.UUID, req *ChangePasswordRequest) error
	RegistrationChangePassword(req *RegistrationChangePasswordRequest) error
	GetUser(id uuid.UUID) (*models.User, error)
}

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	CreateProfile(req *CreateProfileRequest) (*models.Organization, error)
	Register(userID uuid.UUID, req *RegistrationRequest) error
	AddLocation(userID uuid.UUID, req *LocationRequest) (*models.Location, error)
	AddHours(userID uuid.UUID, req []HoursRequest) error
	AssignLocation(orgID, locationID uuid.UUID) error
	ToggleStatus(orgID uuid.UUID, actorID uuid.UUID) (models.OrganizationStatus, error)
	GetProfile(orgID uuid.UUID) (*OrganizationProfile, error)
	GetPublicProfile(orgID uuid.UUID, viewer *models.User) (*OrganizationProfile, error)
	GetProfileForUser(userID uuid.UUID) (*OrganizationProfile, error)
	AddOrganization(adminID uuid.UUID, req *AddOrganizationRequest) (*models.Organization, error)
	SetLanguages(userID uuid.UUID, names []string) error
	AddService(userID uuid.UUID, req *ServiceRequest) (*models.Service, error)
	ListLanguages() ([]string, error)
	ListNeighborhoods() []string
}

// DirectoryServiceInterface defines the interface for directory search service
type DirectoryServiceInterface interface {
	Search(req *SearchRequest) (*SearchResponse, error)
}
