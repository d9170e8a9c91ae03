package service

import (
	"errors"
	"fmt"
	"strings"

	"new-arrivals-chi/internal/auth"
	"new-arrivals-chi/internal/database/models"
	apperrors "new-arrivals-chi/internal/errors"
	"new-arrivals-chi/internal/repository"
	"new-arrivals-chi/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountService handles signup, login and password changes
type AccountService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewAccountService creates a new account service
func NewAccountService(repo repository.UserRepositoryInterface, validator *validator.Validate) *AccountService {
	return &AccountService{
		repo:      repo,
		validator: validator,
	}
}

// SignupRequest represents the signup form
type SignupRequest struct {
	Email           string `form:"email" json:"email"`
	Password        string `form:"password" json:"password"`
	PasswordConfirm string `form:"password_confirm" json:"password_confirm"`
}

// ChangePasswordRequest represents the change password form
type ChangePasswordRequest struct {
	OldPassword        string `form:"old_password" json:"old_password"`
	NewPassword        string `form:"new_password" json:"new_password"`
	NewPasswordConfirm string `form:"new_password_confirm" json:"new_password_confirm"`
}

// RegistrationChangePasswordRequest represents the form a newly registered
// organization uses to replace its emailed temporary password
type RegistrationChangePasswordRequest struct {
	Email              string `form:"email" json:"email"`
	TemporaryPassword  string `form:"old_password" json:"old_password"`
	NewPassword        string `form:"new_password" json:"new_password"`
	NewPasswordConfirm string `form:"new_password_confirm" json:"new_password_confirm"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates a standard account. Checks run in order: email syntax,
// duplicate email, confirmation match, password strength.
func (s *AccountService) Signup(req *SignupRequest) (*models.User, error) {
	email := normalizeEmail(req.Email)
	if err := s.validator.Var(email, "required,email_syntax"); err != nil {
		return nil, apperrors.ErrInvalidEmail
	}

	existing, err := s.repo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	if req.Password != req.PasswordConfirm {
		return nil, apperrors.ErrPasswordMismatch
	}
	if !validation.ValidPassword(req.Password) {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Password: hash,
		Role:     models.UserRoleStandard,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies an email and password pair
func (s *AccountService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.repo.GetByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// ChangePassword replaces the password of a signed in user. Checks run in
// order: old password, reuse, confirmation match, strength.
func (s *AccountService) ChangePassword(userID uuid.UUID, req *ChangePasswordRequest) error {
	user, err := s.GetUser(userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, req.OldPassword) {
		return apperrors.ErrWrongPassword
	}

	return s.replacePassword(user, req.OldPassword, req.NewPassword, req.NewPasswordConfirm)
}

// RegistrationChangePassword replaces an emailed temporary password. It runs
// the ChangePassword checks with the email and temporary password verified
// first.
func (s *AccountService) RegistrationChangePassword(req *RegistrationChangePasswordRequest) error {
	email := normalizeEmail(req.Email)
	if !validation.ValidEmail(email) {
		return apperrors.ErrInvalidEmail
	}

	user, err := s.repo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !auth.CheckPassword(user.Password, req.TemporaryPassword) {
		return apperrors.ErrInvalidRegistrationCredentials
	}

	return s.replacePassword(user, req.TemporaryPassword, req.NewPassword, req.NewPasswordConfirm)
}

func (s *AccountService) replacePassword(user *models.User, current, next, confirm string) error {
	if current == next {
		return apperrors.ErrPasswordReused
	}
	if next != confirm {
		return apperrors.ErrPasswordMismatch
	}
	if !validation.ValidPassword(next) {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(user.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	user.Password = hash
	return nil
}

// GetUser retrieves a user by ID
func (s *AccountService) GetUser(id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
