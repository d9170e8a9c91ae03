package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const defaultSecretKey = "your-secret-key-change-in-production"

//go:embed neighborhoods.yaml
var defaultNeighborhoods []byte

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	AutoMigrate      bool   `mapstructure:"DB_AUTO_MIGRATE"`

	// Session configuration
	SecretKey        string        `mapstructure:"SECRET_KEY"`
	SessionTTL       time.Duration `mapstructure:"SESSION_TTL"`
	RememberDuration time.Duration `mapstructure:"REMEMBER_DURATION"`
	CookieSecure     bool          `mapstructure:"COOKIE_SECURE"`

	// Localization
	DefaultLanguage string `mapstructure:"DEFAULT_LANGUAGE"`

	// Login throttling
	LoginRatePerMinute int `mapstructure:"LOGIN_RATE_PER_MINUTE"`
	LoginRateBurst     int `mapstructure:"LOGIN_RATE_BURST"`

	// SMTP configuration for registration emails
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     string `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`
	PublicURL    string `mapstructure:"PUBLIC_URL"`

	// Tracing
	OTelEndpoint    string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelHeaders     string `mapstructure:"OTEL_EXPORTER_OTLP_HEADERS"`
	OTelServiceName string `mapstructure:"OTEL_SERVICE_NAME"`

	// Directory
	NeighborhoodsFile string   `mapstructure:"NEIGHBORHOODS_FILE"`
	Neighborhoods     []string `mapstructure:"-"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	neighborhoods, err := LoadNeighborhoods(config.NeighborhoodsFile)
	if err != nil {
		return nil, err
	}
	config.Neighborhoods = neighborhoods

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "new_arrivals_chi")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_AUTO_MIGRATE", true)

	// Session defaults
	viper.SetDefault("SECRET_KEY", defaultSecretKey)
	viper.SetDefault("SESSION_TTL", 12*time.Hour)
	viper.SetDefault("REMEMBER_DURATION", 12*time.Hour)
	viper.SetDefault("COOKIE_SECURE", false)

	viper.SetDefault("DEFAULT_LANGUAGE", "en")

	viper.SetDefault("LOGIN_RATE_PER_MINUTE", 10)
	viper.SetDefault("LOGIN_RATE_BURST", 5)

	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "no-reply@newarrivalschi.org")
	viper.SetDefault("PUBLIC_URL", "http://localhost:5000")

	viper.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	viper.SetDefault("OTEL_EXPORTER_OTLP_HEADERS", "")
	viper.SetDefault("OTEL_SERVICE_NAME", "new-arrivals-chi")

	viper.SetDefault("NEIGHBORHOODS_FILE", "")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.SecretKey == defaultSecretKey {
			return fmt.Errorf("SECRET_KEY must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	if len(config.Neighborhoods) == 0 {
		return fmt.Errorf("at least one neighborhood must be configured")
	}

	return nil
}

type neighborhoodsFile struct {
	Neighborhoods []string `yaml:"neighborhoods"`
}

// LoadNeighborhoods reads the neighborhood list from path, or the embedded
// Chicago list when path is empty.
func LoadNeighborhoods(path string) ([]string, error) {
	data := defaultNeighborhoods
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read neighborhoods file: %w", err)
		}
		data = raw
	}

	var parsed neighborhoodsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse neighborhoods: %w", err)
	}
	return parsed.Neighborhoods, nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
