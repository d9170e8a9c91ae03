package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"new-arrivals-chi/internal/auth"
	"new-arrivals-chi/internal/database/models"
	apperrors "new-arrivals-chi/internal/errors"
	"new-arrivals-chi/internal/logger"
	"new-arrivals-chi/internal/mail"
	"new-arrivals-chi/internal/repository"
	"new-arrivals-chi/internal/security"
	"new-arrivals-chi/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// temporaryPasswordLength is the length of passwords emailed to new organizations
const temporaryPasswordLength = 14

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo          repository.OrganizationRepositoryInterface
	userRepo      repository.UserRepositoryInterface
	locationRepo  repository.LocationRepositoryInterface
	languageRepo  repository.LanguageRepositoryInterface
	mailer        mail.Mailer
	validator     *validator.Validate
	neighborhoods []string
	publicURL     string
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	repo repository.OrganizationRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	locationRepo repository.LocationRepositoryInterface,
	languageRepo repository.LanguageRepositoryInterface,
	mailer mail.Mailer,
	validator *validator.Validate,
	neighborhoods []string,
	publicURL string,
) *OrganizationService {
	return &OrganizationService{
		repo:          repo,
		userRepo:      userRepo,
		locationRepo:  locationRepo,
		languageRepo:  languageRepo,
		mailer:        mailer,
		validator:     validator,
		neighborhoods: neighborhoods,
		publicURL:     publicURL,
	}
}

// CreateProfileRequest represents the minimal organization profile
type CreateProfileRequest struct {
	Name      string
	Phone     string
	Status    string
	CreatedBy *uuid.UUID
}

// LocationRequest represents an address form
type LocationRequest struct {
	StreetAddress string `form:"street_address" json:"street_address" validate:"required,max=255"`
	ZipCode       string `form:"zip_code" json:"zip_code" validate:"required,zipcode"`
	City          string `form:"city" json:"city" validate:"required,max=100"`
	State         string `form:"state" json:"state" validate:"required,max=50"`
	Neighborhood  string `form:"neighborhood" json:"neighborhood" validate:"required,max=100"`
}

// HoursRequest represents one opening segment
type HoursRequest struct {
	DayOfWeek   int    `form:"day_of_week" json:"day_of_week" validate:"weekday"`
	OpeningTime string `form:"opening_time" json:"opening_time" validate:"required,clock"`
	ClosingTime string `form:"closing_time" json:"closing_time" validate:"required,clock"`
}

// RegistrationRequest represents the organization registration form
type RegistrationRequest struct {
	Location LocationRequest
	Hours    []HoursRequest
}

// AddOrganizationRequest represents the admin form that creates an organization
type AddOrganizationRequest struct {
	Email string `form:"email" json:"email"`
	Name  string `form:"name" json:"name"`
	Phone string `form:"phone" json:"phone"`
}

// ServiceDateRequest represents one scheduled occurrence of a service
type ServiceDateRequest struct {
	Date      string `form:"date" json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `form:"start_time" json:"start_time" validate:"required,clock"`
	EndTime   string `form:"end_time" json:"end_time" validate:"required,clock"`
	Repeat    string `form:"repeat" json:"repeat"`
}

// ServiceRequest represents the add service form
type ServiceRequest struct {
	Category    string               `form:"category" json:"category" validate:"required,oneof=legal health food"`
	Service     string               `form:"service" json:"service" validate:"required,max=100"`
	Access      string               `form:"access" json:"access" validate:"max=100"`
	ServiceNote string               `form:"service_note" json:"service_note" validate:"max=255"`
	Dates       []ServiceDateRequest `json:"dates" validate:"dive"`
	LocationIDs []uuid.UUID          `json:"location_ids"`
}

// CreateProfile creates an organization from its name, phone and status.
// Every field is required.
func (s *OrganizationService) CreateProfile(req *CreateProfileRequest) (*models.Organization, error) {
	name := security.Text(req.Name)
	phone := strings.TrimSpace(req.Phone)
	status := models.OrganizationStatus(strings.TrimSpace(req.Status))
	if name == "" || phone == "" || status == "" {
		return nil, apperrors.ErrMissingOrganizationFields
	}
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	org := &models.Organization{
		Name:      name,
		Phone:     phone,
		Status:    status,
		CreatedBy: req.CreatedBy,
	}
	if err := s.repo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	return org, nil
}

// Register stores the primary location and weekly hours of the user's organization
func (s *OrganizationService) Register(userID uuid.UUID, req *RegistrationRequest) error {
	orgID, err := s.organizationOf(userID)
	if err != nil {
		return err
	}

	location, err := s.buildLocation(userID, &req.Location)
	if err != nil {
		return err
	}
	hours, err := s.buildHours(userID, req.Hours)
	if err != nil {
		return err
	}

	if err := s.repo.RegisterLocationAndHours(orgID, location, hours); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to register organization: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"organization_id": orgID,
		"hours":           len(hours),
	}).Info("organization registered")
	return nil
}

// AddLocation creates an additional, non-primary location
func (s *OrganizationService) AddLocation(userID uuid.UUID, req *LocationRequest) (*models.Location, error) {
	location, err := s.buildLocation(userID, req)
	if err != nil {
		return nil, err
	}
	if err := s.locationRepo.Create(location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return location, nil
}

// AddHours appends opening hours to the user's organization
func (s *OrganizationService) AddHours(userID uuid.UUID, req []HoursRequest) error {
	orgID, err := s.organizationOf(userID)
	if err != nil {
		return err
	}
	hours, err := s.buildHours(userID, req)
	if err != nil {
		return err
	}
	if err := s.repo.AddHours(orgID, hours); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to add hours: %w", err)
	}
	return nil
}

// AssignLocation makes an existing location the organization's primary one
func (s *OrganizationService) AssignLocation(orgID, locationID uuid.UUID) error {
	if _, err := s.locationRepo.GetByID(locationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLocationNotFound
		}
		return fmt.Errorf("failed to get location: %w", err)
	}
	if err := s.repo.AssignLocation(orgID, locationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to assign location: %w", err)
	}
	return nil
}

// ToggleStatus suspends an active organization and activates any other
func (s *OrganizationService) ToggleStatus(orgID uuid.UUID, actorID uuid.UUID) (models.OrganizationStatus, error) {
	org, err := s.repo.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrOrganizationNotFound
		}
		return "", fmt.Errorf("failed to get organization: %w", err)
	}

	next := models.OrganizationStatusActive
	if org.Status == models.OrganizationStatusActive {
		next = models.OrganizationStatusSuspended
	}

	if err := s.repo.UpdateStatus(orgID, next, &actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrOrganizationNotFound
		}
		return "", fmt.Errorf("failed to update organization status: %w", err)
	}
	return next, nil
}

// GetProfile aggregates an organization with its location, languages,
// hours and services
func (s *OrganizationService) GetProfile(orgID uuid.UUID) (*OrganizationProfile, error) {
	org, err := s.repo.GetWithAllRelations(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return BuildProfile(org), nil
}

// GetPublicProfile returns a profile if the viewer may see it. Organizations
// that are not active are visible only to admins and their own managers.
func (s *OrganizationService) GetPublicProfile(orgID uuid.UUID, viewer *models.User) (*OrganizationProfile, error) {
	profile, err := s.GetProfile(orgID)
	if err != nil {
		return nil, err
	}
	if profile.Status == models.OrganizationStatusActive || viewer.IsAdmin() {
		return profile, nil
	}
	if viewer != nil && viewer.OrganizationID != nil && *viewer.OrganizationID == orgID {
		return profile, nil
	}
	return nil, apperrors.ErrOrganizationNotVisible
}

// GetProfileForUser returns the profile of the organization the user manages
func (s *OrganizationService) GetProfileForUser(userID uuid.UUID) (*OrganizationProfile, error) {
	orgID, err := s.organizationOf(userID)
	if err != nil {
		return nil, err
	}
	return s.GetProfile(orgID)
}

// AddOrganization creates an active organization and its manager account,
// then emails the manager a temporary password. Checks run in order: email
// syntax, phone format, name present, email unused.
func (s *OrganizationService) AddOrganization(adminID uuid.UUID, req *AddOrganizationRequest) (*models.Organization, error) {
	admin, err := s.userRepo.GetByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !admin.IsAdmin() {
		return nil, apperrors.ErrAdminRequired
	}

	email := normalizeEmail(req.Email)
	if !validation.ValidEmail(email) {
		return nil, apperrors.ErrInvalidEmail
	}
	phone, ok := validation.NormalizePhone(req.Phone)
	if !ok {
		return nil, apperrors.ErrInvalidPhone
	}
	name := security.Text(req.Name)
	if name == "" {
		return nil, apperrors.ErrMissingOrganizationFields
	}

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	temporary, err := auth.GenerateTemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate temporary password: %w", err)
	}
	hash, err := auth.HashPassword(temporary)
	if err != nil {
		return nil, err
	}

	org := &models.Organization{
		Name:      name,
		Phone:     phone,
		Status:    models.OrganizationStatusActive,
		CreatedBy: &adminID,
	}
	manager := &models.User{
		Email:    email,
		Password: hash,
		Role:     models.UserRoleStandard,
	}
	if err := s.repo.CreateWithManager(org, manager); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	subject, body, err := mail.RegistrationEmail(s.publicURL, name, email, temporary)
	if err != nil {
		return org, err
	}
	if err := s.mailer.Send(email, subject, body); err != nil {
		return org, fmt.Errorf("organization created but registration email failed: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"organization_id": org.ID,
		"manager":         email,
	}).Info("organization added")
	return org, nil
}

// SetLanguages replaces the languages offered by the user's organization
func (s *OrganizationService) SetLanguages(userID uuid.UUID, names []string) error {
	orgID, err := s.organizationOf(userID)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	languages := make([]models.Language, 0, len(names))
	for _, name := range security.NewSanitizer().CleanAll(names) {
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		language, err := s.languageRepo.FirstOrCreate(name)
		if err != nil {
			return fmt.Errorf("failed to resolve language %q: %w", name, err)
		}
		languages = append(languages, *language)
	}

	if err := s.repo.ReplaceLanguages(orgID, languages); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to set languages: %w", err)
	}
	return nil
}

// AddService creates a service with its dates and locations for the user's organization
func (s *OrganizationService) AddService(userID uuid.UUID, req *ServiceRequest) (*models.Service, error) {
	orgID, err := s.organizationOf(userID)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	service := &models.Service{
		Category:     req.Category,
		Description:  security.Text(req.Service),
		Access:       security.Text(req.Access),
		ServiceNote:  security.Text(req.ServiceNote),
		ServiceDates: make([]models.ServiceDate, 0, len(req.Dates)),
	}

	for _, d := range req.Dates {
		date, err := time.Parse(dateLayout, d.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("date", "dates must use YYYY-MM-DD")
		}
		start, end, err := normalizeRange(d.StartTime, d.EndTime)
		if err != nil {
			return nil, err
		}
		repeat := models.RepeatFrequency(strings.TrimSpace(d.Repeat))
		if repeat != "" && !repeat.IsValid() {
			return nil, apperrors.ErrInvalidRepeat
		}
		service.ServiceDates = append(service.ServiceDates, models.ServiceDate{
			Date:      date,
			StartTime: start,
			EndTime:   end,
			Repeat:    repeat,
		})
	}

	if len(req.LocationIDs) > 0 {
		locations, err := s.locationRepo.GetByIDs(req.LocationIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to get locations: %w", err)
		}
		if len(locations) != len(req.LocationIDs) {
			return nil, apperrors.ErrLocationNotFound
		}
		service.Locations = locations
	}

	if err := s.repo.AddService(orgID, service); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to add service: %w", err)
	}
	return service, nil
}

// ListLanguages returns every known language name
func (s *OrganizationService) ListLanguages() ([]string, error) {
	languages, err := s.languageRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}
	names := make([]string, 0, len(languages))
	for _, l := range languages {
		names = append(names, l.Language)
	}
	return names, nil
}

// ListNeighborhoods returns the neighborhoods an organization may register in
func (s *OrganizationService) ListNeighborhoods() []string {
	out := make([]string, len(s.neighborhoods))
	copy(out, s.neighborhoods)
	return out
}

func (s *OrganizationService) organizationOf(userID uuid.UUID) (uuid.UUID, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apperrors.ErrUserNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.OrganizationID == nil {
		return uuid.Nil, apperrors.ErrUserHasNoOrganization
	}
	return *user.OrganizationID, nil
}

func (s *OrganizationService) knownNeighborhood(name string) bool {
	for _, n := range s.neighborhoods {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

func (s *OrganizationService) buildLocation(userID uuid.UUID, req *LocationRequest) (*models.Location, error) {
	cleaned := LocationRequest{
		StreetAddress: security.Text(req.StreetAddress),
		ZipCode:       strings.TrimSpace(req.ZipCode),
		City:          security.Text(req.City),
		State:         security.Text(req.State),
		Neighborhood:  security.Text(req.Neighborhood),
	}
	if err := s.validator.Struct(&cleaned); err != nil {
		return nil, toValidationError(err)
	}
	if !s.knownNeighborhood(cleaned.Neighborhood) {
		return nil, apperrors.ErrUnknownNeighborhood
	}

	return &models.Location{
		StreetAddress: cleaned.StreetAddress,
		ZipCode:       cleaned.ZipCode,
		City:          cleaned.City,
		State:         cleaned.State,
		Neighborhood:  cleaned.Neighborhood,
		CreatedBy:     &userID,
	}, nil
}

func (s *OrganizationService) buildHours(userID uuid.UUID, req []HoursRequest) ([]models.Hours, error) {
	hours := make([]models.Hours, 0, len(req))
	for i := range req {
		h := req[i]
		if !models.Weekday(h.DayOfWeek).IsValid() {
			return nil, apperrors.ErrInvalidWeekday
		}
		opening, closing, err := normalizeRange(h.OpeningTime, h.ClosingTime)
		if err != nil {
			return nil, err
		}
		hours = append(hours, models.Hours{
			DayOfWeek:   models.Weekday(h.DayOfWeek),
			OpeningTime: opening,
			ClosingTime: closing,
			CreatedBy:   &userID,
		})
	}
	return hours, nil
}

func normalizeRange(start, end string) (string, string, error) {
	from, err := validation.NormalizeClock(start)
	if err != nil {
		return "", "", apperrors.ErrInvalidTime
	}
	to, err := validation.NormalizeClock(end)
	if err != nil {
		return "", "", apperrors.ErrInvalidTime
	}
	if to <= from {
		return "", "", apperrors.NewValidationError("hours", "closing time must be after opening time")
	}
	return from, to, nil
}

// toValidationError reports the first failing field of a validator error
func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "clock":
			return apperrors.ErrInvalidTime
		case "weekday":
			return apperrors.ErrInvalidWeekday
		}
		return apperrors.NewValidationError(strings.ToLower(fe.Field()), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return fmt.Errorf("validation failed: %w", err)
}
