package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"new-arrivals-chi/internal/auth"
	"new-arrivals-chi/internal/config"
	"new-arrivals-chi/internal/database"
	"new-arrivals-chi/internal/database/models"
	applog "new-arrivals-chi/internal/logger"
	"new-arrivals-chi/internal/repository"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// YAML data structures

type LanguagesFile struct {
	Languages []string `yaml:"languages"`
}

type UserData struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type LocationData struct {
	StreetAddress string `yaml:"street_address"`
	ZipCode       string `yaml:"zip_code"`
	City          string `yaml:"city"`
	State         string `yaml:"state"`
	Neighborhood  string `yaml:"neighborhood"`
}

type HoursData struct {
	Day   string `yaml:"day"`
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

type ServiceDateData struct {
	Date      string `yaml:"date"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
	Repeat    string `yaml:"repeat"`
}

type ServiceData struct {
	Category    string            `yaml:"category"`
	Service     string            `yaml:"service"`
	Access      string            `yaml:"access"`
	ServiceNote string            `yaml:"service_note"`
	Dates       []ServiceDateData `yaml:"dates"`
}

type OrganizationData struct {
	Name      string        `yaml:"name"`
	Phone     string        `yaml:"phone"`
	Status    string        `yaml:"status"`
	Manager   string        `yaml:"manager"`
	Location  *LocationData `yaml:"location"`
	Hours     []HoursData   `yaml:"hours"`
	Languages []string      `yaml:"languages"`
	Services  []ServiceData `yaml:"services"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

// seedPasswordEnv overrides the password of every seeded user when set
const seedPasswordEnv = "SEED_PASSWORD"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	applog.Setup(cfg.LogLevel)
	log := applog.New().WithField("component", "seed")

	log.Info("Loading initial data from YAML files")

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(log, cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(log, db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Info("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(log *applog.Logger, dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.WithError(err).Warnf("Database not ready (%d/%d)", attempt, maxAttempts)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(log *applog.Logger, db *gorm.DB, dataDir string) error {
	var languages []string
	var languagesFile LanguagesFile
	if err := loadYAMLFiles(dataDir, "languages", &languagesFile, func() {
		languages = append(languages, languagesFile.Languages...)
		languagesFile = LanguagesFile{}
	}); err != nil {
		return fmt.Errorf("failed to load languages: %w", err)
	}

	var users []UserData
	var usersFile UsersFile
	if err := loadYAMLFiles(dataDir, "users", &usersFile, func() {
		users = append(users, usersFile.Users...)
		usersFile = UsersFile{}
	}); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	var organizations []OrganizationData
	var orgFile OrganizationsFile
	if err := loadYAMLFiles(dataDir, "organizations", &orgFile, func() {
		organizations = append(organizations, orgFile.Organizations...)
		orgFile = OrganizationsFile{}
	}); err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	languageRepo := repository.NewLanguageRepository(db)

	// Languages first so organizations can reference them
	for _, name := range languages {
		if _, err := languageRepo.FirstOrCreate(strings.TrimSpace(name)); err != nil {
			return fmt.Errorf("failed to create language %s: %w", name, err)
		}
	}
	log.Infof("Languages: %d total", len(languages))

	userCreated := 0
	for _, userData := range users {
		created, err := createUser(userRepo, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		if created {
			userCreated++
		}
	}
	log.Infof("Users: %d created, %d total", userCreated, len(users))

	orgCreated := 0
	for _, orgData := range organizations {
		created, err := createOrganization(db, orgRepo, languageRepo, orgData)
		if err != nil {
			log.WithError(err).Warnf("Failed to create organization %s", orgData.Name)
			continue // Continue with other organizations
		}
		if created {
			orgCreated++
		}
	}
	log.Infof("Organizations: %d created, %d total", orgCreated, len(organizations))

	return nil
}

// loadYAMLFiles decodes every .yaml file under dataDir whose path contains
// kind into target, calling collect after each file.
func loadYAMLFiles(dataDir, kind string, target interface{}, collect func()) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), kind) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, target); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			collect()
		}
		return nil
	})
}

func seedPassword(password string) string {
	if override := os.Getenv(seedPasswordEnv); override != "" {
		return override
	}
	return password
}

func createUser(repo *repository.UserRepository, data UserData) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))
	if _, err := repo.GetByEmail(email); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hash, err := auth.HashPassword(seedPassword(data.Password))
	if err != nil {
		return false, err
	}

	role := models.UserRole(data.Role)
	if role == "" {
		role = models.UserRoleStandard
	}

	return true, repo.Create(&models.User{
		Email:    email,
		Password: hash,
		Role:     role,
	})
}

func createOrganization(db *gorm.DB, orgRepo *repository.OrganizationRepository, languageRepo *repository.LanguageRepository, data OrganizationData) (bool, error) {
	var existing models.Organization
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	status := models.OrganizationStatus(data.Status)
	if status == "" {
		status = models.OrganizationStatusActive
	}
	if !status.IsValid() {
		return false, fmt.Errorf("invalid status %q", data.Status)
	}

	org := &models.Organization{
		Name:   data.Name,
		Phone:  data.Phone,
		Status: status,
	}

	if data.Manager != "" {
		hash, err := auth.HashPassword(seedPassword(data.Manager))
		if err != nil {
			return false, err
		}
		manager := &models.User{
			Email:    managerEmail(data.Name),
			Password: hash,
			Role:     models.UserRoleStandard,
		}
		if err := orgRepo.CreateWithManager(org, manager); err != nil {
			return false, err
		}
	} else if err := orgRepo.Create(org); err != nil {
		return false, err
	}

	var location *models.Location
	if data.Location != nil {
		hours, err := buildHours(data.Hours)
		if err != nil {
			return false, err
		}
		location = &models.Location{
			StreetAddress: data.Location.StreetAddress,
			ZipCode:       data.Location.ZipCode,
			City:          data.Location.City,
			State:         data.Location.State,
			Neighborhood:  data.Location.Neighborhood,
		}
		if err := orgRepo.RegisterLocationAndHours(org.ID, location, hours); err != nil {
			return false, fmt.Errorf("location: %w", err)
		}
	}

	if len(data.Languages) > 0 {
		var languages []models.Language
		for _, name := range data.Languages {
			language, err := languageRepo.FirstOrCreate(name)
			if err != nil {
				return false, err
			}
			languages = append(languages, *language)
		}
		if err := orgRepo.ReplaceLanguages(org.ID, languages); err != nil {
			return false, fmt.Errorf("languages: %w", err)
		}
	}

	for _, serviceData := range data.Services {
		service, err := buildService(serviceData, location)
		if err != nil {
			return false, err
		}
		if err := orgRepo.AddService(org.ID, service); err != nil {
			return false, fmt.Errorf("service %s: %w", serviceData.Service, err)
		}
	}

	return true, nil
}

// managerEmail derives a stable login for a seeded organization
func managerEmail(name string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-':
			return '.'
		}
		return -1
	}, strings.ToLower(name))
	return slug + "@example.org"
}

func buildHours(data []HoursData) ([]models.Hours, error) {
	hours := make([]models.Hours, 0, len(data))
	for _, h := range data {
		day, ok := models.ParseWeekday(strings.ToLower(h.Day))
		if !ok {
			return nil, fmt.Errorf("invalid day %q", h.Day)
		}
		hours = append(hours, models.Hours{
			DayOfWeek:   day,
			OpeningTime: h.Open,
			ClosingTime: h.Close,
		})
	}
	return hours, nil
}

func buildService(data ServiceData, location *models.Location) (*models.Service, error) {
	service := &models.Service{
		Category:    data.Category,
		Description: data.Service,
		Access:      data.Access,
		ServiceNote: data.ServiceNote,
	}
	for _, d := range data.Dates {
		date, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", d.Date, err)
		}
		service.ServiceDates = append(service.ServiceDates, models.ServiceDate{
			Date:      date,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
			Repeat:    models.RepeatFrequency(d.Repeat),
		})
	}
	if location != nil {
		service.Locations = []models.Location{*location}
	}
	return service, nil
}
