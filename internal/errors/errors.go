package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrLocationNotFound     = &NotFoundError{Entity: "location"}
)

// Already Exists Errors
var (
	ErrUserExists = &AlreadyExistsError{Entity: "user", Context: "with this email"}
)

// Form Validation Errors
var (
	ErrInvalidEmail              = &ValidationError{Field: "email", Message: "invalid email address"}
	ErrInvalidPhone              = &ValidationError{Field: "phone", Message: "invalid phone number"}
	ErrPasswordMismatch          = &ValidationError{Field: "password_confirm", Message: "passwords do not match"}
	ErrWeakPassword              = &ValidationError{Field: "password", Message: "password does not meet requirements"}
	ErrPasswordReused            = &ValidationError{Field: "new_password", Message: "new password matches the previous password"}
	ErrMissingOrganizationFields = &ValidationError{Field: "organization", Message: "name, phone and status are required"}
	ErrInvalidStatus             = &ValidationError{Field: "status", Message: "invalid organization status"}
	ErrUnknownNeighborhood       = &ValidationError{Field: "neighborhood", Message: "unknown neighborhood"}
	ErrInvalidTime               = &ValidationError{Field: "hours", Message: "times must use HH:MM"}
	ErrInvalidWeekday            = &ValidationError{Field: "hours", Message: "day of week must be between 1 and 7"}
	ErrInvalidRepeat             = &ValidationError{Field: "repeat", Message: "invalid repeat frequency"}
)

// Authentication Errors
var (
	ErrInvalidCredentials             = &AuthenticationError{Message: "invalid email or password"}
	ErrWrongPassword                  = &AuthenticationError{Message: "existing password is incorrect"}
	ErrInvalidRegistrationCredentials = &AuthenticationError{Message: "invalid email or registration password"}
	ErrInvalidSession                 = &AuthenticationError{Message: "invalid session"}
)

// Authorization Errors
var (
	ErrAdminRequired          = &AuthorizationError{Message: "administrator role required"}
	ErrUserHasNoOrganization  = &AuthorizationError{Message: "user is not linked to an organization"}
	ErrOrganizationNotVisible = &AuthorizationError{Message: "organization is not publicly visible"}
)

// Configuration Errors
var (
	ErrMailerNotConfigured = &ConfigurationError{Message: "SMTP_HOST is not configured"}
)

// Business Logic Errors
var (
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
