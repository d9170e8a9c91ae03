package auth

import (
	"fmt"
	"time"

	"new-arrivals-chi/internal/config"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "session"

// SessionConfig holds the settings for cookie sessions
type SessionConfig struct {
	Secret      string
	TTL         time.Duration
	RememberFor time.Duration
	Secure      bool
	Issuer      string
}

// NewSessionConfig builds session settings from the application config
func NewSessionConfig(cfg *config.Config) *SessionConfig {
	return &SessionConfig{
		Secret:      cfg.SecretKey,
		TTL:         cfg.SessionTTL,
		RememberFor: cfg.RememberDuration,
		Secure:      cfg.CookieSecure,
		Issuer:      "new-arrivals-chi",
	}
}

// Validate checks that the configuration can sign and expire tokens
func (c *SessionConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("session secret is required")
	}
	if c.TTL <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}
	if c.RememberFor < 0 {
		return fmt.Errorf("remember duration cannot be negative")
	}
	return nil
}
