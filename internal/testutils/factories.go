package testutils

import (
	"fmt"
	"time"

	"new-arrivals-chi/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:   "Test Organization",
		Phone:  "3125550123",
		Status: models.OrganizationStatusActive,
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// WithStatus sets a custom status for the organization
func (f *OrganizationFactory) WithStatus(status models.OrganizationStatus) *models.Organization {
	org := f.Create()
	org.Status = status
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email and a placeholder hash
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:    fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		Password: "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z6E7hN8Qh3o2JwY7x0pB0p6y",
		Role:     models.UserRoleStandard,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithOrganization links the user to an organization
func (f *UserFactory) WithOrganization(orgID uuid.UUID) *models.User {
	user := f.Create()
	user.OrganizationID = &orgID
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// LocationFactory provides methods to create test Location data
type LocationFactory struct{}

// NewLocationFactory creates a new LocationFactory
func NewLocationFactory() *LocationFactory {
	return &LocationFactory{}
}

// Create creates a test Location with default values
func (f *LocationFactory) Create() *models.Location {
	return &models.Location{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		StreetAddress: "4750 N Sheridan Rd",
		ZipCode:       "60640",
		City:          "Chicago",
		State:         "IL",
		Neighborhood:  "Uptown",
	}
}

// WithNeighborhood sets a custom neighborhood for the location
func (f *LocationFactory) WithNeighborhood(neighborhood string) *models.Location {
	location := f.Create()
	location.Neighborhood = neighborhood
	return location
}

// HoursFactory provides methods to create test Hours data
type HoursFactory struct{}

// NewHoursFactory creates a new HoursFactory
func NewHoursFactory() *HoursFactory {
	return &HoursFactory{}
}

// Create creates a Monday 09:00-17:00 segment
func (f *HoursFactory) Create() models.Hours {
	return f.On(models.Monday, "09:00", "17:00")
}

// On creates an hours segment for the given day and times
func (f *HoursFactory) On(day models.Weekday, opening, closing string) models.Hours {
	return models.Hours{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		DayOfWeek:   day,
		OpeningTime: opening,
		ClosingTime: closing,
	}
}

// ServiceFactory provides methods to create test Service data
type ServiceFactory struct{}

// NewServiceFactory creates a new ServiceFactory
func NewServiceFactory() *ServiceFactory {
	return &ServiceFactory{}
}

// Create creates a test Service with one weekly date
func (f *ServiceFactory) Create() *models.Service {
	return &models.Service{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Category:    models.CategoryHealth,
		Description: "Vaccinations",
		Access:      "walk-in",
		ServiceNote: "Bring an ID if you have one",
		ServiceDates: []models.ServiceDate{
			{
				Date:      time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
				StartTime: "10:00",
				EndTime:   "14:00",
				Repeat:    models.RepeatEveryWeek,
			},
		},
	}
}

// WithCategory creates a service in the given category
func (f *ServiceFactory) WithCategory(category, description string) *models.Service {
	service := f.Create()
	service.Category = category
	service.Description = description
	return service
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	Organization *OrganizationFactory
	User         *UserFactory
	Location     *LocationFactory
	Hours        *HoursFactory
	Service      *ServiceFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		User:         NewUserFactory(),
		Location:     NewLocationFactory(),
		Hours:        NewHoursFactory(),
		Service:      NewServiceFactory(),
	}
}
